/*
Package imageproc implements content-aware image resizing through seam carving.
The image width is reduced by repeatedly removing the connected vertical path
of pixels (the seam) with the lowest cumulative gradient energy, which retains
the visually important regions better than uniform scaling or cropping.

The package exposes both the low level building blocks (FindVerticalSeam,
RemoveVerticalSeam, DrawVerticalSeams) and a high level entry point:

	package main

	import (
		"log"
		"os"

		"github.com/jerry73204/imageproc"
	)

	func main() {
		p := &imageproc.Processor{
			NewWidth: 640,
		}

		if err := p.Process(os.Stdin, os.Stdout); err != nil {
			log.Fatalf("error rescaling the image: %v", err)
		}
	}

A command line interface with the same options is provided under cmd/imageproc.
*/
package imageproc
