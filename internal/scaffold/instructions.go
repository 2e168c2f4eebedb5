package scaffold

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// InstructionsData feeds the post-scaffold setup message.
type InstructionsData struct {
	RepoURL      string
	PagesURL     string
	WorkflowPath string
	OutputDir    string
	Branch       string
}

// WriteInstructions prints the manual steps required to finish enabling
// GitHub Pages after the workflow and site files exist.
func WriteInstructions(w io.Writer, data InstructionsData) {
	header := color.New(color.FgGreen, color.Bold)
	step := color.New(color.FgCyan)
	value := color.New(color.FgYellow)

	branch := data.Branch
	if branch == "" {
		branch = "main"
	}

	header.Fprintln(w, "Site generated successfully!")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Next steps:")
	step.Fprintf(w, "  1. Commit the generated files:\n")
	fmt.Fprintf(w, "       git add %s %s\n", data.OutputDir, data.WorkflowPath)
	fmt.Fprintf(w, "       git commit -m \"Add GitHub Pages site\"\n")
	step.Fprintf(w, "  2. Push to %s:\n", branch)
	fmt.Fprintf(w, "       git push origin %s\n", branch)
	step.Fprintln(w, "  3. Enable Pages in the repository settings:")
	fmt.Fprintln(w, "       Settings -> Pages -> Source: GitHub Actions")
	if data.RepoURL != "" {
		fmt.Fprintf(w, "       %s/settings/pages\n", data.RepoURL)
	}
	if data.PagesURL != "" {
		fmt.Fprintln(w)
		fmt.Fprint(w, "Once deployed, the site will be available at ")
		value.Fprintln(w, data.PagesURL)
	}
}
