package tracelog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDumpOutputs(t *testing.T) {
	type person struct {
		Name string
		Age  int
	}
	svc, logPath := newFileLogger(t, "debug")

	m := map[string]int{"a": 1, "b": 2}
	s := []string{"x", "y"}
	p := person{Name: "Ada", Age: 37}

	svc.Dump(nil)
	svc.Dump(m)
	svc.Dump(s)
	svc.Dump(p)
	svc.Dump(&p)

	content := readLog(t, logPath)
	require.Contains(t, content, "<nil>")
	require.True(t, strings.Contains(content, "a") || strings.Contains(content, "b"))
	require.Contains(t, content, "Ada")
	require.Contains(t, content, "person")
}

func TestDumpCircularReference(t *testing.T) {
	type node struct {
		Value int
		Next  *node
	}
	svc, logPath := newFileLogger(t, "debug")

	n1 := &node{Value: 1}
	n2 := &node{Value: 2}
	n1.Next = n2
	n2.Next = n1

	svc.Dump(n1)
	require.Contains(t, readLog(t, logPath), "<circular reference>")
}

func TestDumpLargeSlice(t *testing.T) {
	svc, logPath := newFileLogger(t, "debug")

	big := make([]int, 20)
	for i := range big {
		big[i] = i
	}
	svc.Dump(big)
	require.Contains(t, readLog(t, logPath), "more elements")
}

func TestDumpBelowThreshold(t *testing.T) {
	svc, logPath := newFileLogger(t, "warn")

	svc.Dump(map[string]int{"a": 1})
	require.Empty(t, readLog(t, logPath))
}

func TestDumpUninitialized(t *testing.T) {
	(&Service{}).Dump("should not panic")
}
