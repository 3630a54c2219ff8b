// Package testing drives swipe rows through simulated drags and frames.
//
// # Quick Start
//
// Create a tester around a row, drag it, and assert on what it recorded:
//
//	func TestDeleteRow(t *testing.T) {
//	    tester := swipetest.NewRowTesterWithT(t, swipe.RowConfig{
//	        Trailing: []swipe.Action{swipe.NewAction("Delete", nil).WithSwipeToTrigger()},
//	    })
//
//	    tester.DragTo(-120, 10)
//	    tester.Release()
//	    if err := tester.PumpAndSettle(time.Second); err != nil {
//	        t.Fatal(err)
//	    }
//
//	    if got := tester.Row().State(swipe.Trailing); got != swipe.Expanded {
//	        t.Errorf("expected expanded, got %v", got)
//	    }
//	}
//
// # Animation Testing
//
// The tester installs a [FakeClock] as the animation clock. Each call to
// [RowTester.PumpFrame] advances it by one frame and steps every active
// ticker, so settle animations run without sleeping.
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import swipetest "github.com/go-drift/swipe/pkg/testing"
package testing
