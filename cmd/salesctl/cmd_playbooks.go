package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	apperrors "voice-sales-backend/internal/errors"
	"voice-sales-backend/internal/service"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var playbooksFlags struct {
	file string
}

var playbooksCmd = &cobra.Command{
	Use:   "playbooks",
	Short: "Manage industry playbooks",
}

var playbooksLoadCmd = &cobra.Command{
	Use:   "load",
	Short: "Create playbooks from a YAML file; existing industries are skipped",
	RunE:  runPlaybooksLoad,
}

func init() {
	playbooksLoadCmd.Flags().StringVarP(&playbooksFlags.file, "file", "f", "", "YAML playbook file, or - for stdin (required)")
	_ = playbooksLoadCmd.MarkFlagRequired("file")

	playbooksCmd.AddCommand(playbooksLoadCmd)
}

// playbookFile is the seed format: a top-level "playbooks" list
type playbookFile struct {
	Playbooks []service.CreatePlaybookRequest `yaml:"playbooks"`
}

func readPlaybooks(r io.Reader) ([]service.CreatePlaybookRequest, error) {
	var file playbookFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("parse playbooks: %w", err)
	}
	return file.Playbooks, nil
}

type loadSummary struct {
	Created []string
	Skipped []string
}

// loadPlaybooks creates each playbook in order. An industry that already has a
// playbook is skipped; any other error stops the load.
func loadPlaybooks(ctx context.Context, playbooks service.PlaybookServiceInterface, reqs []service.CreatePlaybookRequest) (*loadSummary, error) {
	summary := &loadSummary{}
	for i := range reqs {
		req := reqs[i]
		created, err := playbooks.Create(ctx, &req)
		switch {
		case err == nil:
			summary.Created = append(summary.Created, created.Industry)
		case apperrors.IsAlreadyExists(err):
			summary.Skipped = append(summary.Skipped, req.Industry)
		default:
			return summary, fmt.Errorf("playbook %d (%s): %w", i+1, req.Industry, err)
		}
	}
	return summary, nil
}

func runPlaybooksLoad(cmd *cobra.Command, _ []string) error {
	in, err := openInput(playbooksFlags.file)
	if err != nil {
		return err
	}
	defer in.Close()

	reqs, err := readPlaybooks(in)
	if err != nil {
		return err
	}

	b, closeDB, err := openBackend()
	if err != nil {
		return err
	}
	defer closeDB()

	summary, err := loadPlaybooks(cmd.Context(), b.playbooks, reqs)
	if summary != nil {
		printLoadSummary(cmd.OutOrStdout(), summary)
	}
	return err
}

func printLoadSummary(out io.Writer, summary *loadSummary) {
	for _, industry := range summary.Created {
		fmt.Fprintf(out, "created  %s\n", industry)
	}
	for _, industry := range summary.Skipped {
		fmt.Fprintf(out, "skipped  %s (already exists)\n", industry)
	}
	fmt.Fprintf(out, "%d created, %d skipped\n", len(summary.Created), len(summary.Skipped))
}
