package main

import "github.com/naka-gawa/github-repo-search/cmd"

func main() {
	cmd.Execute()
}
