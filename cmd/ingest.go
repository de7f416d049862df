package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"pdfqa/src/core/qa"
	"pdfqa/src/log"
)

// ingestCmd represents the ingest command
var ingestCmd = &cobra.Command{
	Use:   "ingest [files...]",
	Short: "Index local PDF files without starting the server",
	Long: `The ingest command extracts, chunks and embeds the given PDF files
into the persisted index, the same way an upload through the HTTP API would.`,
	Args: cobra.MinimumNArgs(1),
	Run:  RunIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func RunIngest(cmd *cobra.Command, args []string) {
	svc, err := buildService()
	if err != nil {
		log.Error(err, "Failed to build service")
		return
	}

	ctx := context.Background()
	svc.LoadIndex(ctx)

	var indexed, chunks int
	bar := progressbar.Default(int64(len(args)), "indexing")
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Error(err, "Failed to read file, skipping", "path", path)
			bar.Add(1)
			continue
		}

		report, err := svc.Ingest(ctx, []qa.Upload{{Filename: path, Data: data}})
		if err != nil {
			log.Error(err, "Failed to ingest file", "path", path)
			bar.Add(1)
			continue
		}

		indexed += report.DocumentsIndexed
		chunks += report.TotalChunks
		bar.Add(1)
	}

	fmt.Printf("\n%d of %d file(s) indexed, %d chunk(s) generated\n", indexed, len(args), chunks)
}
