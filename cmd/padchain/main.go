// Command padchain counts the human key presses needed to type door codes
// through a chain of keypad-driving robots.
package main

import "github.com/katalvlaran/padchain/internal/cli"

func main() {
	cli.Execute()
}
