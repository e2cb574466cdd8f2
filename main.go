/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/dileepkhanna/jobportal/cmd"

func main() {
	cmd.Execute()
}
