/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/qlmock/qlmock/cmd"

func main() {
	cmd.Execute()
}
