package cmd

import (
	"encoding/json"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"os"

	"github.com/garyhouston/exifdir"
	"github.com/paulmatencio/s3c/gLog"
	"github.com/spf13/cobra"
	"golang.org/x/image/tiff"
)

var (
	asMap, indent bool

	readCmd = &cobra.Command{
		Use:   "read",
		Short: "Print the Exif directory of a JPEG or TIFF file as JSON",
		Long: `Print the Exif directory of a JPEG or TIFF file, either in the
persisted form (tag numbers, data types and values) or, with --map, as a
map of field names to values.`,
		Run: readExif,
	}

	infoCmd = &cobra.Command{
		Use:   "info",
		Short: "Print a summary of a JPEG or TIFF file and its Exif directories",
		Long:  ``,
		Run:   info,
	}
)

func init() {
	RootCmd.AddCommand(readCmd)
	RootCmd.AddCommand(infoCmd)
	readCmd.Flags().StringVarP(&inFile, "input", "i", "", "the JPEG or TIFF file to read")
	readCmd.Flags().BoolVarP(&asMap, "map", "m", false, "print field names and values instead of the persisted form")
	readCmd.Flags().BoolVarP(&indent, "indent", "", false, "indent the JSON output")
	infoCmd.Flags().StringVarP(&inFile, "input", "i", "", "the JPEG or TIFF file to read")
}

func readFile(path string) (*exifdir.Directory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return exifdir.FromSource(f)
}

func printJSON(dir *exifdir.Directory) error {
	var (
		data []byte
		err  error
	)
	switch {
	case asMap && indent:
		data, err = json.MarshalIndent(dir.ToMap(), "", "  ")
	case asMap:
		data, err = json.Marshal(dir.ToMap())
	case indent:
		data, err = exifdir.SerializeIndent(dir, "", "  ")
	default:
		data, err = exifdir.Serialize(dir)
	}
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func readExif(cmd *cobra.Command, args []string) {
	if len(inFile) == 0 {
		gLog.Warning.Printf("%s", missingInputFile)
		return
	}
	dir, err := readFile(inFile)
	if err != nil {
		gLog.Error.Printf("%s: %v", inFile, err)
		return
	}
	if err := printJSON(dir); err != nil {
		gLog.Error.Printf("%v", err)
	}
}

func info(cmd *cobra.Command, args []string) {
	if len(inFile) == 0 {
		gLog.Warning.Printf("%s", missingInputFile)
		return
	}
	f, err := os.Open(inFile)
	if err != nil {
		gLog.Error.Printf("%v", err)
		return
	}
	defer f.Close()

	cfg, format, err := decodeConfig(f)
	if err != nil {
		gLog.Warning.Printf("%s: image header: %v", inFile, err)
	} else {
		fmt.Printf("%s: %s image, %dx%d\n", inFile, format, cfg.Width, cfg.Height)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		gLog.Error.Printf("%v", err)
		return
	}
	dir, err := exifdir.FromSource(f)
	if err != nil {
		gLog.Error.Printf("%s: %v", inFile, err)
		return
	}
	printSummary(dir, "")
	fmt.Printf("hash: %016x\n", dir.Hash())
}

// Decode the image header of a JPEG or TIFF file.
func decodeConfig(r io.ReadSeeker) (image.Config, string, error) {
	var magic [2]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return image.Config{}, "", err
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return image.Config{}, "", err
	}
	if magic[0] == 0xFF && magic[1] == 0xD8 {
		cfg, err := jpeg.DecodeConfig(r)
		return cfg, "jpeg", err
	}
	cfg, err := tiff.DecodeConfig(r)
	return cfg, "tiff", err
}

func printSummary(dir *exifdir.Directory, prefix string) {
	fmt.Printf("%s%s IFD: %d fields\n", prefix, dir.TagSet().Name(), dir.Size())
	for _, field := range dir.Fields() {
		if sub := dir.SubDirectory(field.Tag); sub != nil {
			printSummary(sub, prefix+"  ")
		}
	}
}
