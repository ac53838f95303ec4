package cmsl_test

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/cmsl-lang/cmsl/pkg/cmsl"
)

// Idempotent re-compile (§8): execute(s) twice with the same s returns the
// same integer and the same error/no-error outcome; diagnostic sequences are
// not compared.
func TestExecuteIdempotentProperty(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("running the same program twice yields the same result", prop.ForAll(
		func(n int) bool {
			source := []byte(fmt.Sprintf(`int main() { int i = 0; while (i < %d) { i += 1; } return i; }`, n))

			first, err1 := cmsl.Execute(source)
			second, err2 := cmsl.Execute(source)

			return (err1 == nil) == (err2 == nil) && first == second
		},
		gen.IntRange(0, 50),
	))

	properties.TestingRun(t)
}
