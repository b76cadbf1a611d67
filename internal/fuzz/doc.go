// Package fuzztests houses Go fuzz harnesses for the scanner and the test
// parser. Every input must survive scanning and parsing without a panic and
// come back byte for byte from the token stream and from the tree.
//
// Назначение: прогонять произвольные байты через FileSet, сканер и парсер.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
