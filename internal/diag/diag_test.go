package diag

import "testing"

func TestCodeFormatSubstitutesArgs(t *testing.T) {
	if got := TokenExpected.Format("*/"); got != "'*/' expected." {
		t.Fatalf("Format = %q", got)
	}
	if got := UnexpectedCharacter.Format(); got != "Unexpected character {0}." {
		t.Fatalf("Format without args = %q", got)
	}
	if got := MissingClosingQuote.Format("ignored"); got != "Missing closing quote character." {
		t.Fatalf("Format with unused args = %q", got)
	}
}

func TestCodeID(t *testing.T) {
	if id := MissingClosingQuote.ID(); id != "LEX1002" {
		t.Fatalf("ID = %q", id)
	}
	if id := IOLoadFile.ID(); id != "IO4001" {
		t.Fatalf("ID = %q", id)
	}
}

func TestBagBoundAndSort(t *testing.T) {
	b := NewBag(2)
	b.Add(New(5, 1, UnexpectedCharacter, "#"))
	b.Add(New(1, 0, MissingClosingQuote))
	b.Add(New(0, 0, MissingClosingQuote))
	if b.Len() != 2 || b.Dropped() != 1 {
		t.Fatalf("len=%d dropped=%d", b.Len(), b.Dropped())
	}
	b.Sort()
	if b.Items()[0].Position != 1 {
		t.Fatalf("expected sorted by position, got %v", b.Items())
	}
}

func TestDedupSink(t *testing.T) {
	bag := NewBag(10)
	s := NewDedupSink(bag)
	d := New(3, 2, UnrecognizedEscapeSequence)
	s.Add(d)
	s.Add(d)
	s.Add(New(4, 2, UnrecognizedEscapeSequence))
	if bag.Len() != 2 {
		t.Fatalf("expected 2 unique diagnostics, got %d", bag.Len())
	}
}

func TestSeverityDefaults(t *testing.T) {
	if InvalidRegularExpression.DefaultSeverity() != SevWarning {
		t.Fatalf("regex diagnostics should be warnings")
	}
	if New(0, 1, UnexpectedCharacter, "@").Severity != SevError {
		t.Fatalf("lexical diagnostics should be errors")
	}
	if sev, err := ParseSeverity("warn"); err != nil || sev != SevWarning {
		t.Fatalf("ParseSeverity(warn) = %v, %v", sev, err)
	}
}
