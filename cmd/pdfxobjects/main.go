// pdfxobjects - list embedded image XObjects in a PDF
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sort"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

var (
	firstPage = flag.Int("f", 1, "first page to scan")
	lastPage  = flag.Int("l", 0, "last page to scan (0 = last page of document)")
	detailed  = flag.Bool("detailed", false, "decode each image and show its dimensions")
)

func usage() {
	fmt.Fprintf(os.Stderr, "pdfxobjects - list embedded image XObjects in a PDF\n\n")
	fmt.Fprintf(os.Stderr, "Usage: pdfxobjects [options] <PDF-file>\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(1)
	}
	pdfFile := flag.Arg(0)

	pageCount, err := api.PageCountFile(pdfFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	first := *firstPage
	if first < 1 {
		first = 1
	}
	last := *lastPage
	if last == 0 || last > pageCount {
		last = pageCount
	}

	f, err := os.Open(pdfFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	pages := []string{fmt.Sprintf("%d-%d", first, last)}
	images, err := api.ExtractImagesRaw(f, pages, model.NewDefaultConfiguration())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	total := 0
	fmt.Printf("page object name     type\n")
	fmt.Printf("--------------------------\n")
	for _, pageImages := range images {
		objNrs := make([]int, 0, len(pageImages))
		for objNr := range pageImages {
			objNrs = append(objNrs, objNr)
		}
		sort.Ints(objNrs)

		for _, objNr := range objNrs {
			img := pageImages[objNr]
			total++
			fmt.Printf("%4d %6d %-8s %s", img.PageNr, objNr, img.Name, img.FileType)
			if *detailed {
				if cfg, _, err := image.DecodeConfig(img); err == nil {
					fmt.Printf(" %dx%d", cfg.Width, cfg.Height)
				}
			}
			fmt.Println()
		}
	}
	fmt.Printf("\n%d image(s) on pages %d-%d\n", total, first, last)
}
