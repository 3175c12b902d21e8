package cmd

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dendrascience/djzip/djzip"
)

// NewCreateCmd creates and returns the create subcommand for the djzip CLI.
// It builds a zip archive from the files and directory trees given as
// arguments.
func NewCreateCmd() *cobra.Command {
	var (
		outputPath string
		levelName  string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "create -o OUTPUT PATH...",
		Short: "Build a zip archive from files and directory trees",
		Long: `Build a zip archive containing the given files and directory trees.

Directories are walked in lexical order and every regular file under them
is archived under its slash-separated relative path. The archive streams to
the output file as entries are added, so trees larger than memory are fine
as long as each individual file fits.

The compression level applies to every entry: store, fast, default, or
best. The default can also be set with the "level" key in the config file
or the DJZIP_LEVEL environment variable.`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if !cmd.Flags().Changed("level") {
				levelName = viper.GetString("level")
			}
			if !cmd.Flags().Changed("verbose") {
				verbose = viper.GetBool("verbose")
			}
			runCreate(outputPath, levelName, verbose, args)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to the archive to create (required)")
	cmd.Flags().StringVarP(&levelName, "level", "l", "default", "Compression level: store, fast, default, best")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.MarkFlagRequired("output")

	return cmd
}

func runCreate(outputPath, levelName string, verbose bool, paths []string) {
	level, err := djzip.ParseLevel(levelName)
	if err != nil {
		log.Fatalf("Invalid compression level: %v", err)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		log.Fatalf("Failed to create archive file: %v", err)
	}

	zw := djzip.NewWriter(out)
	count, err := archivePaths(zw, paths, level, verbose)
	if err != nil {
		out.Close()
		os.Remove(outputPath)
		log.Fatalf("Failed to build archive: %v", err)
	}
	if err := zw.Close(); err != nil {
		out.Close()
		os.Remove(outputPath)
		log.Fatalf("Failed to finish archive: %v", err)
	}
	if err := out.Close(); err != nil {
		log.Fatalf("Failed to close archive file: %v", err)
	}

	if verbose {
		info, err := os.Stat(outputPath)
		if err == nil {
			fmt.Printf("Wrote %s: %d entries, %d bytes\n", outputPath, count, info.Size())
		} else {
			fmt.Printf("Wrote %s: %d entries\n", outputPath, count)
		}
	}
}

// archivePaths adds every file reachable from paths to the archive and
// returns how many entries were written. A path naming a regular file is
// archived under its base name; a path naming a directory is walked in
// lexical order and its files are archived under the directory's base name
// joined with their slash-separated relative paths.
func archivePaths(zw *djzip.Writer, paths []string, level djzip.Level, verbose bool) (int, error) {
	count := 0
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return count, err
		}
		if !info.IsDir() {
			if err := addFile(zw, path, info.Name(), level, verbose); err != nil {
				return count, err
			}
			count++
			continue
		}
		n, err := addTree(zw, path, level, verbose)
		count += n
		if err != nil {
			return count, err
		}
	}
	return count, nil
}

// addTree walks the directory at root and archives every regular file it
// contains. WalkDir visits entries in lexical order, which keeps archives
// reproducible for identical trees.
func addTree(zw *djzip.Writer, root string, level djzip.Level, verbose bool) (int, error) {
	base := filepath.Base(filepath.Clean(root))
	count := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(filepath.Join(base, rel))
		if err := addFile(zw, path, name, level, verbose); err != nil {
			return err
		}
		count++
		return nil
	})
	return count, err
}

func addFile(zw *djzip.Writer, path, name string, level djzip.Level, verbose bool) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if verbose {
		fmt.Printf("  adding %s (%d bytes)\n", name, len(payload))
	}
	if err := zw.AddEntry(name, payload, level); err != nil {
		return fmt.Errorf("add %s: %w", name, err)
	}
	return nil
}
