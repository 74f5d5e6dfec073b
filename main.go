package main

import (
	"github.com/soocke/roi-binarizer/app"
	"github.com/soocke/roi-binarizer/cmd"
)

func main() {
	cmd.Execute(app.Run)
}
