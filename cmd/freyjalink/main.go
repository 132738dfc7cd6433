/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/ssargent/freyjalink/cmd/freyjalink/cmd"

func main() {
	cmd.Execute()
}
