// Package mocks provides centralized mock implementations for testing.
//
// Two styles are used, matching the needs of the interface being mocked:
//
//   - testify/mock based mocks (MockObserver) for call-order and argument
//     expectations
//   - hand-written mocks with function fields and call recording
//     (MockHasher, MockPrompter) for simple scripted behavior
//
// Usage:
//
//	import "github.com/phrazzld/fitcircle/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    prompter := &mocks.MockPrompter{Answers: []string{"Bulk", "Fat Loss"}}
//	    // Use the mock in your test...
//	}
package mocks
