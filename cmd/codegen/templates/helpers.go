package templates

import (
	"strconv"
	"strings"
)

func prefixedStrings(prefix string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// "d0 D0, d1 D1" for the typed argument list
func argStrings(count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		n := strconv.Itoa(i)
		sb.WriteString("d")
		sb.WriteString(n)
		sb.WriteString(" D")
		sb.WriteString(n)
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// "m.d0 == d0 && m.d1 == d1" for the comparison chain
func compareStrings(count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		n := strconv.Itoa(i)
		sb.WriteString("m.d")
		sb.WriteString(n)
		sb.WriteString(" == d")
		sb.WriteString(n)
		if i < count-1 {
			sb.WriteString(" && ")
		}
	}
	return sb.String()
}

// "d0: d0, d1: d1" for the struct literal
func fieldStrings(count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		n := strconv.Itoa(i)
		sb.WriteString("d")
		sb.WriteString(n)
		sb.WriteString(": d")
		sb.WriteString(n)
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}
