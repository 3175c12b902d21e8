package cmd

import (
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/taigrr/colorhash"
)

// NewSeedCmd creates and returns the seed subcommand for the djzip CLI.
// It generates a tree of small test files for exercising the create
// command on realistic input.
func NewSeedCmd() *cobra.Command {
	var (
		outputPath string
		fileCount  int
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate test files distributed into hashed bucket directories",
		Long: `Generate a tree of small test files for exercising djzip create.

Each file is named after a fresh UUID and placed in a bucket directory
derived from a color hash of that name, giving an even spread across up
to 1000 buckets. File contents are a few UUID lines drawn from a shared
pool, so archives built from the tree compress realistically.`,
		Run: func(cmd *cobra.Command, args []string) {
			runSeed(outputPath, fileCount, verbose)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to output directory (required)")
	cmd.Flags().IntVarP(&fileCount, "count", "c", 10000, "Number of files to generate")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.MarkFlagRequired("output")

	return cmd
}

func runSeed(outputPath string, fileCount int, verbose bool) {
	if verbose {
		fmt.Printf("Generating %d test files in %s\n", fileCount, outputPath)
	}

	if err := os.MkdirAll(outputPath, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	// Shared pool of content lines so generated trees contain duplicate
	// data for the compressor to find.
	contentPool := make([]string, 50)
	for i := range contentPool {
		contentPool[i] = uuid.New().String()
	}

	filesCreated := 0
	bucketCounts := make(map[string]int)

	for filesCreated < fileCount {
		name := uuid.New().String()
		bucket := fmt.Sprintf("%03d", colorhash.HashString(name)%1000)

		dirPath := filepath.Join(outputPath, bucket)
		if err := os.MkdirAll(dirPath, 0755); err != nil {
			log.Printf("Warning: Failed to create directory %s: %v", dirPath, err)
			continue
		}

		lineCount, _ := rand.Int(rand.Reader, big.NewInt(8))
		extRand, _ := rand.Int(rand.Reader, big.NewInt(2))
		ext := ".json"
		if extRand.Int64() == 1 {
			ext = ".txt"
		}

		var content strings.Builder
		for i := int64(0); i <= lineCount.Int64(); i++ {
			lineIndex, _ := rand.Int(rand.Reader, big.NewInt(int64(len(contentPool))))
			content.WriteString(contentPool[lineIndex.Int64()])
			content.WriteString("\n")
		}

		filePath := filepath.Join(dirPath, name+ext)
		if err := os.WriteFile(filePath, []byte(content.String()), 0644); err != nil {
			log.Printf("Warning: Failed to write file %s: %v", filePath, err)
			continue
		}

		bucketCounts[bucket]++
		filesCreated++

		if verbose && filesCreated%1000 == 0 {
			fmt.Printf("Created %d/%d files...\n", filesCreated, fileCount)
		}
	}

	if verbose {
		fmt.Printf("Successfully created %d files\n", filesCreated)
		fmt.Printf("Files distributed across %d buckets\n", len(bucketCounts))

		maxFiles := 0
		minFiles := fileCount
		for _, count := range bucketCounts {
			if count > maxFiles {
				maxFiles = count
			}
			if count < minFiles {
				minFiles = count
			}
		}
		fmt.Printf("Bucket file counts: min=%d, max=%d\n", minFiles, maxFiles)
	}
}
