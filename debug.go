package touchui

import (
	"fmt"
	"os"
)

// globalDebug mirrors the most recently set EventSystem debug flag so that
// node operations (which lack an EventSystem pointer) can check it cheaply.
// Only valid with a single EventSystem.
var globalDebug bool

// debugf prints a diagnostic line to stderr. Callers check the debug flag.
func debugf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[touchui] "+format+"\n", args...)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("touchui debug: %s on disposed node %q", op, n.Name))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
// Enter/exit propagation walks the full ancestor chain every hover change.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		debugf("warning: tree depth %d exceeds %d (node %q)", depth, debugMaxTreeDepth, n.Name)
	}
}

// debugLockChange logs a hand-lock transition of the arbitration unit.
func debugLockChange(from, to HandType) {
	if from != to {
		debugf("hand lock: %s -> %s", from, to)
	}
}
