// Command trace_evolution exercises the offline half of the evolution
// pipeline from the terminal: classify an instruction, print the prompt
// context that would be assembled for it, and optionally render the
// line diff between two text files. Useful when tuning prompts without
// a model or database running.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dellis317/provocations/pkg/engine/classify"
	"github.com/dellis317/provocations/pkg/engine/contextual"
	"github.com/dellis317/provocations/pkg/engine/diffview"

	"github.com/fatih/color"
)

func main() {
	instruction := flag.String("instruction", "", "editing instruction to classify and build context for")
	lensType := flag.String("lens", "", "active lens type (consumer, executive, technical, financial, strategic, skeptic)")
	tone := flag.String("tone", "", "tone override")
	targetLength := flag.String("length", "", "target length: shorter, same, or longer")
	oldFile := flag.String("old", "", "path to the old text for diffing")
	newFile := flag.String("new", "", "path to the new text for diffing")
	flag.Parse()

	if *instruction == "" && (*oldFile == "" || *newFile == "") {
		fmt.Fprintln(os.Stderr, "usage: trace_evolution -instruction \"...\" [-lens TYPE] [-tone TONE] [-length LEN]")
		fmt.Fprintln(os.Stderr, "       trace_evolution -old old.txt -new new.txt")
		os.Exit(2)
	}

	if *instruction != "" {
		traceContext(*instruction, *lensType, *tone, *targetLength)
	}

	if *oldFile != "" && *newFile != "" {
		if err := traceDiff(*oldFile, *newFile); err != nil {
			fmt.Fprintf(os.Stderr, "diff failed: %v\n", err)
			os.Exit(1)
		}
	}
}

func traceContext(instruction, lensType, tone, targetLength string) {
	heading := color.New(color.FgCyan, color.Bold)
	label := color.New(color.FgYellow)

	classifier := classify.NewClassifier()
	instrType := classifier.Classify(instruction)

	heading.Println("== Classification ==")
	label.Printf("instruction: ")
	fmt.Println(instruction)
	label.Printf("type:        ")
	color.Green(string(instrType))
	fmt.Println()

	builder := &contextual.Builder{
		InstructionType: instrType,
		ActiveLensType:  lensType,
		Tone:            tone,
		TargetLength:    targetLength,
	}

	heading.Println("== Prompt context ==")
	fmt.Println(builder.Build())
	fmt.Println()
}

func traceDiff(oldPath, newPath string) error {
	oldText, err := os.ReadFile(oldPath)
	if err != nil {
		return err
	}
	newText, err := os.ReadFile(newPath)
	if err != nil {
		return err
	}

	lines := diffview.Diff(string(oldText), string(newText))

	color.New(color.FgCyan, color.Bold).Println("== Diff ==")
	for _, line := range lines {
		switch line.Type {
		case diffview.LineAdded:
			color.Green("+ %s", line.Content)
		case diffview.LineRemoved:
			color.Red("- %s", line.Content)
		default:
			fmt.Printf("  %s\n", line.Content)
		}
	}

	added := diffview.Count(lines, diffview.LineAdded)
	removed := diffview.Count(lines, diffview.LineRemoved)
	fmt.Printf("\n%s, %s\n",
		color.GreenString("%d added", added),
		color.RedString("%d removed", removed),
	)
	return nil
}
