package editor_test

import (
	"fmt"

	"github.com/katalvlaran/bezier/coefficient"
	"github.com/katalvlaran/bezier/curve"
	"github.com/katalvlaran/bezier/editor"
)

// ExampleSession drags the middle control point of the default quadratic.
func ExampleSession() {
	opts := editor.DefaultOptions()
	opts.Steps = 2
	s, err := editor.NewSession(editor.DefaultControlPoints(), opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(s.Points())

	_ = s.Move(1, curve.Pt(250, 0))
	_ = s.SetKind(coefficient.KindJIT)
	fmt.Println(s.Kind(), s.Points())

	// Output:
	// [(100, 100) (250, 250) (400, 100)]
	// jit [(100, 100) (250, 50) (400, 100)]
}
