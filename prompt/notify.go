package prompt

import (
	"fmt"
	"io"
	"os"

	"github.com/storecheck-cli/storecheck/checker"
	"github.com/storecheck-cli/storecheck/color"
	"github.com/storecheck-cli/storecheck/icon"
	"github.com/storecheck-cli/storecheck/style"
)

// Seam for tests.
var out io.Writer = os.Stdout

// Notify prints a passive terminal banner for a resolved status, for
// non-interactive use where a dialog would be in the way.
func Notify(status checker.Status) {
	if !status.CanUpdate() {
		fmt.Fprintf(out, "%s %s %s\n",
			icon.Get(icon.Success),
			style.Bold(status.LocalVersion),
			style.Faint("is up to date"),
		)
		return
	}

	fmt.Fprintf(out, `
%s %s New version is available %s %s
%s
`,
		style.Fg(color.Green)("▇▇▇"),
		icon.Get(icon.Update),
		style.Bold(status.StoreVersion),
		style.Faint(fmt.Sprintf("(You're on %s)", status.LocalVersion)),
		style.Faint(status.StoreLink),
	)

	if notes, ok := status.ReleaseNotes.Get(); ok {
		fmt.Fprintf(out, "\n%s\n%s\n", style.Bold("What's new"), notes)
	}
}
