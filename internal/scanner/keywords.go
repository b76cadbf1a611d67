package scanner

import "github.com/palantir/tslint-sub000/internal/syntax"

// keywordKind resolves an ASCII identifier run to a keyword kind without
// hashing: the switch is keyed on the run length, then the first character.
// Anything that is not a keyword is an IdentifierName.
func keywordKind(run []byte) syntax.Kind {
	switch len(run) {
	case 2:
		switch run[0] {
		case 'd':
			if run[1] == 'o' {
				return syntax.DoKeyword
			}
		case 'i':
			switch run[1] {
			case 'f':
				return syntax.IfKeyword
			case 'n':
				return syntax.InKeyword
			}
		}
	case 3:
		switch run[0] {
		case 'a':
			if string(run[1:]) == "ny" {
				return syntax.AnyKeyword
			}
		case 'f':
			if string(run[1:]) == "or" {
				return syntax.ForKeyword
			}
		case 'g':
			if string(run[1:]) == "et" {
				return syntax.GetKeyword
			}
		case 'l':
			if string(run[1:]) == "et" {
				return syntax.LetKeyword
			}
		case 'n':
			if string(run[1:]) == "ew" {
				return syntax.NewKeyword
			}
		case 's':
			if string(run[1:]) == "et" {
				return syntax.SetKeyword
			}
		case 't':
			if string(run[1:]) == "ry" {
				return syntax.TryKeyword
			}
		case 'v':
			if string(run[1:]) == "ar" {
				return syntax.VarKeyword
			}
		}
	case 4:
		switch run[0] {
		case 'b':
			if string(run[1:]) == "ool" {
				return syntax.BoolKeyword
			}
		case 'c':
			if string(run[1:]) == "ase" {
				return syntax.CaseKeyword
			}
		case 'e':
			switch string(run[1:]) {
			case "lse":
				return syntax.ElseKeyword
			case "num":
				return syntax.EnumKeyword
			}
		case 'n':
			if string(run[1:]) == "ull" {
				return syntax.NullKeyword
			}
		case 't':
			switch string(run[1:]) {
			case "his":
				return syntax.ThisKeyword
			case "rue":
				return syntax.TrueKeyword
			}
		case 'v':
			if string(run[1:]) == "oid" {
				return syntax.VoidKeyword
			}
		case 'w':
			if string(run[1:]) == "ith" {
				return syntax.WithKeyword
			}
		}
	case 5:
		switch run[0] {
		case 'b':
			if string(run[1:]) == "reak" {
				return syntax.BreakKeyword
			}
		case 'c':
			switch string(run[1:]) {
			case "atch":
				return syntax.CatchKeyword
			case "lass":
				return syntax.ClassKeyword
			case "onst":
				return syntax.ConstKeyword
			}
		case 'f':
			if string(run[1:]) == "alse" {
				return syntax.FalseKeyword
			}
		case 's':
			if string(run[1:]) == "uper" {
				return syntax.SuperKeyword
			}
		case 't':
			if string(run[1:]) == "hrow" {
				return syntax.ThrowKeyword
			}
		case 'w':
			if string(run[1:]) == "hile" {
				return syntax.WhileKeyword
			}
		case 'y':
			if string(run[1:]) == "ield" {
				return syntax.YieldKeyword
			}
		}
	case 6:
		switch run[0] {
		case 'd':
			if string(run[1:]) == "elete" {
				return syntax.DeleteKeyword
			}
		case 'e':
			if string(run[1:]) == "xport" {
				return syntax.ExportKeyword
			}
		case 'i':
			if string(run[1:]) == "mport" {
				return syntax.ImportKeyword
			}
		case 'm':
			if string(run[1:]) == "odule" {
				return syntax.ModuleKeyword
			}
		case 'n':
			if string(run[1:]) == "umber" {
				return syntax.NumberKeyword
			}
		case 'p':
			if string(run[1:]) == "ublic" {
				return syntax.PublicKeyword
			}
		case 'r':
			if string(run[1:]) == "eturn" {
				return syntax.ReturnKeyword
			}
		case 's':
			switch string(run[1:]) {
			case "tatic":
				return syntax.StaticKeyword
			case "tring":
				return syntax.StringKeyword
			case "witch":
				return syntax.SwitchKeyword
			}
		case 't':
			if string(run[1:]) == "ypeof" {
				return syntax.TypeOfKeyword
			}
		}
	case 7:
		switch run[0] {
		case 'b':
			if string(run[1:]) == "oolean" {
				return syntax.BooleanKeyword
			}
		case 'd':
			switch string(run[1:]) {
			case "eclare":
				return syntax.DeclareKeyword
			case "efault":
				return syntax.DefaultKeyword
			}
		case 'e':
			if string(run[1:]) == "xtends" {
				return syntax.ExtendsKeyword
			}
		case 'f':
			if string(run[1:]) == "inally" {
				return syntax.FinallyKeyword
			}
		case 'p':
			switch string(run[1:]) {
			case "ackage":
				return syntax.PackageKeyword
			case "rivate":
				return syntax.PrivateKeyword
			}
		case 'r':
			if string(run[1:]) == "equire" {
				return syntax.RequireKeyword
			}
		}
	case 8:
		switch run[0] {
		case 'c':
			if string(run[1:]) == "ontinue" {
				return syntax.ContinueKeyword
			}
		case 'd':
			if string(run[1:]) == "ebugger" {
				return syntax.DebuggerKeyword
			}
		case 'f':
			if string(run[1:]) == "unction" {
				return syntax.FunctionKeyword
			}
		}
	case 9:
		switch run[0] {
		case 'i':
			if string(run[1:]) == "nterface" {
				return syntax.InterfaceKeyword
			}
		case 'p':
			if string(run[1:]) == "rotected" {
				return syntax.ProtectedKeyword
			}
		}
	case 10:
		switch run[0] {
		case 'i':
			switch string(run[1:]) {
			case "mplements":
				return syntax.ImplementsKeyword
			case "nstanceof":
				return syntax.InstanceOfKeyword
			}
		}
	case 11:
		switch run[0] {
		case 'c':
			if string(run[1:]) == "onstructor" {
				return syntax.ConstructorKeyword
			}
		}
	}
	return syntax.IdentifierName
}
