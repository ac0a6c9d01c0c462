// eograph - builds the 3x3x3 edge orientation state graph and reports its farthest states.
package main

import (
	"github.com/SeamusWaldron/eograph/internal/cli"
)

func main() {
	cli.Execute()
}
