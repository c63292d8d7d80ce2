package main

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/garyhouston/exifdir"
)

// Decode the Exif data of a JPEG or TIFF file, then re-encode it in the
// same byte order and write it to a new file. The output is bare TIFF data,
// or an APP1 payload with the Exif marker if the input was a JPEG.
func main() {
	if len(os.Args) != 3 {
		fmt.Printf("Usage: %s file outfile\n", os.Args[0])
		return
	}
	buf, err := ioutil.ReadFile(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}
	jpeg := len(buf) >= 2 && buf[0] == 0xFF && buf[1] == 0xD8
	tiff := buf
	if jpeg {
		if tiff, err = exifdir.ExtractJPEGEXIF(bytes.NewReader(buf)); err != nil {
			log.Fatal(err)
		}
	}
	r := exifdir.NewReader()
	r.SetSourceBytes(tiff)
	root, err := r.Read()
	if err != nil {
		log.Fatal(err)
	}
	order := r.ByteOrder()
	r.Close()
	var out []byte
	if jpeg {
		out, err = exifdir.EncodeAPP1(root, order)
	} else {
		out, err = exifdir.Encode(root, order)
	}
	if err != nil {
		log.Fatal(err)
	}
	if err := ioutil.WriteFile(os.Args[2], out, 0644); err != nil {
		log.Fatal(err)
	}
}
