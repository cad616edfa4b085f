package cmd

import (
	"fmt"

	"github.com/wolverin0/crystal-fork-sub001/internal/theme"
	"github.com/wolverin0/crystal-fork-sub001/version"
)

// VersionCmd prints the version banner
type VersionCmd struct{}

// Run executes the version command
func (v *VersionCmd) Run() error {
	fmt.Printf("%s %s\n", theme.AppNameStyle.Render("gitsync"), theme.VersionStyle.Render(version.Version))
	fmt.Println(theme.TaglineStyle.Render(version.Tagline))
	fmt.Println(theme.MutedStyle.Render(fmt.Sprintf("commit %s, built %s, %s",
		version.Commit, version.Date, version.GoVersion)))
	return nil
}
