package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/garyhouston/exifdir"
)

func printValue(value interface{}, length uint32) {
	switch v := value.(type) {
	case []byte:
		if length > 0 && uint32(len(v)) > length {
			fmt.Printf("% x ... (%d bytes)\n", v[:length], len(v))
		} else {
			fmt.Printf("% x\n", v)
		}
	case string:
		if length > 0 && uint32(len(v)) > length {
			fmt.Printf("%q ... (%d bytes)\n", v[:length], len(v))
		} else {
			fmt.Printf("%q\n", v)
		}
	default:
		fmt.Println(v)
	}
}

func printDirectory(dir *exifdir.Directory, length uint32) {
	fmt.Println()
	fields := dir.Fields()
	fmt.Printf("%s IFD with %d ", dir.TagSet().Name(), len(fields))
	if len(fields) != 1 {
		fmt.Println("entries:")
	} else {
		fmt.Println("entry:")
	}
	var subdirs []*exifdir.Directory
	for _, field := range fields {
		fmt.Printf("%s: ", field)
		if sub := dir.SubDirectory(field.Tag); sub != nil {
			fmt.Printf("%s IFD\n", sub.TagSet().Name())
			subdirs = append(subdirs, sub)
			continue
		}
		value, _ := dir.Value(field.Tag)
		printValue(value, length)
	}
	for _, sub := range subdirs {
		printDirectory(sub, length)
	}
}

// Read and display the Exif IFDs of a JPEG or TIFF file.
func main() {
	var length uint
	flag.UintVar(&length, "m", 20, "maximum bytes of a value to print or 0 for no limit")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Printf("Usage: %s [-m max bytes] file\n", os.Args[0])
		return
	}
	file, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()
	dir, err := exifdir.FromSource(file)
	if err != nil {
		log.Fatal(err)
	}
	printDirectory(dir, uint32(length))
}
