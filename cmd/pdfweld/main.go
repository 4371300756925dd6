package main

import "github.com/pdfweld/pdfweld/cmd/pdfweld/cmd"

func main() {
	cmd.Execute()
}
