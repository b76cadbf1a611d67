// Package format re-renders syntax trees with structural formatting rules.
//
// Назначение: детерминированный pretty-print дерева без учёта исходной trivia.
// Не делает: сохранения комментариев, IO.
// Зависимости: internal/syntax.
package format
