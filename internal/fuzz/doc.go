// Package fuzztests houses Go fuzz harnesses for the validation pipeline
// (source -> lexer -> lint). Их цель - ловить паники и нарушения инвариантов
// спанов на произвольном вводе.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
