package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"sync"
	"syscall"
	"time"

	"github.com/jerry73204/imageproc"
	"github.com/jerry73204/imageproc/utils"
	"golang.org/x/term"
)

const helpBanner = `
┌─┐┌─┐┌─┐┌┬┐  ┌─┐┌─┐┬─┐┬  ┬┌─┐┬─┐
└─┐├┤ ├─┤│││  │  ├─┤├┬┘└┐┌┘├┤ ├┬┘
└─┘└─┘┴ ┴┴ ┴  └─┘┴ ┴┴└─ └┘ └─┘┴└─

Content aware image resizing through seam carving.
    Version: %s

`

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

// maxWorkers sets the maximum number of concurrently running workers.
const maxWorkers = 20

// result holds the relevant information about the carving process and the generated image.
type result struct {
	path string
	err  error
}

var (
	// imgFile holds the file being accessed, be it a normal file or a pipe name.
	imgFile *os.File

	// spinner is the progress indicator shown while an image is being carved.
	spinner *utils.Spinner
)

// Version indicates the current build version.
var Version string

var (
	// Flags
	source         = flag.String("in", pipeName, "Source")
	destination    = flag.String("out", pipeName, "Destination")
	newWidth       = flag.Int("width", 0, "New width")
	percentage     = flag.Bool("perc", false, "Reduce the image width by percentage")
	sobelThreshold = flag.Int("sobel", 0, "Sobel filter threshold")
	blurRadius     = flag.Int("blur", 0, "Blur radius applied to the energy map")
	scale          = flag.Bool("scale", false, "Proportionally rescale the image before carving")
	debug          = flag.Bool("debug", false, "Draw the removed seams over the source image")
	seamColor      = flag.String("color", "#ff0000", "Seam color used in debug mode")
	workers        = flag.Int("conc", runtime.NumCPU(), "Number of files to process concurrently")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, helpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *newWidth == 0 {
		flag.Usage()
		log.Fatal(fmt.Sprintf("%s%s",
			utils.DecorateText("\nPlease provide a new width or a reduction percentage!", utils.ErrorMessage),
			utils.DefaultColor,
		))
	}

	proc := &imageproc.Processor{
		SobelThreshold: *sobelThreshold,
		BlurRadius:     *blurRadius,
		NewWidth:       *newWidth,
		SeamColor:      *seamColor,
		Percentage:     *percentage,
		Scale:          *scale,
		Debug:          *debug,
	}

	spinnerText := fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ IMAGEPROC", utils.StatusMessage),
		utils.DecorateText("is carving the image...", utils.DefaultMessage))
	spinner = utils.NewSpinner(spinnerText, time.Millisecond*200, true)

	// Supported files
	validExtensions := []string{".jpg", ".png", ".jpeg", ".bmp", ".gif"}

	var (
		fs  os.FileInfo
		err error
	)

	// Check if the source path is a local image or an URL.
	if utils.IsValidUrl(*source) {
		src, err := utils.DownloadImage(*source)
		if err != nil {
			log.Fatalf(
				utils.DecorateText("Failed to download the source image: %v", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
		defer src.Close()
		defer os.Remove(src.Name())

		if fs, err = src.Stat(); err != nil {
			log.Fatalf(
				utils.DecorateText("Failed to load the source image: %v", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}

		// The download left the file pointer at its end, reopen it for reading.
		img, err := os.Open(src.Name())
		if err != nil {
			log.Fatalf(
				utils.DecorateText("Unable to open the temporary image file: %v", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
		imgFile = img
	} else {
		// Check if the source is a pipe name or a regular file.
		if *source == pipeName {
			fs, err = os.Stdin.Stat()
		} else {
			fs, err = os.Stat(*source)
		}
		if err != nil {
			log.Fatalf(
				utils.DecorateText("Failed to load the source image: %v", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
	}

	now := time.Now()

	switch mode := fs.Mode(); {
	case mode.IsDir():
		var wg sync.WaitGroup
		// Read the destination file or directory.
		if _, err := os.Stat(*destination); err != nil {
			if err = os.Mkdir(*destination, 0755); err != nil {
				log.Fatalf(
					utils.DecorateText("Unable to create the output directory: %v\n", utils.ErrorMessage),
					utils.DecorateText(err.Error(), utils.DefaultMessage),
				)
			}
		}

		// Limit the concurrently running workers to maxWorkers.
		if *workers <= 0 || *workers > maxWorkers {
			*workers = runtime.NumCPU()
		}

		// Process the image files from the specified directory concurrently.
		ch := make(chan result)
		done := make(chan interface{})
		defer close(done)

		paths, errc := walkDir(done, *source, validExtensions)

		wg.Add(*workers)
		for i := 0; i < *workers; i++ {
			go func() {
				defer wg.Done()
				consumer(done, paths, *destination, proc, ch)
			}()
		}

		// Close the channel after the values are consumed.
		go func() {
			defer close(ch)
			wg.Wait()
		}()

		// Consume the channel values.
		for res := range ch {
			printStatus(res.path, res.err)
		}

		if err := <-errc; err != nil {
			fmt.Fprint(os.Stderr, utils.DecorateText(err.Error(), utils.ErrorMessage))
		}

	case mode.IsRegular() || mode&os.ModeNamedPipe != 0:
		ext := filepath.Ext(*destination)
		if !isValidExtension(ext, validExtensions) && *destination != pipeName {
			log.Fatalf(utils.DecorateText(fmt.Sprintf("%v file type not supported", ext), utils.ErrorMessage))
		}

		err := processor(*source, *destination, proc)
		printStatus(*destination, err)
	}

	fmt.Fprintf(os.Stderr, "\nExecution time: %s\n",
		utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
}

// walkDir starts a goroutine to walk the specified directory tree in a recursive manner
// and sends the path of each regular file on the string channel.
// It sends the result of the walk on the error channel.
// It terminates in case the done channel is closed.
func walkDir(
	done <-chan interface{},
	src string,
	srcExts []string,
) (<-chan string, <-chan error) {
	pathChan := make(chan string)
	errChan := make(chan error, 1)

	go func() {
		// Close the paths channel after Walk returns.
		defer close(pathChan)

		errChan <- filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.Mode().IsRegular() {
				return nil
			}

			if !isValidExtension(filepath.Ext(info.Name()), srcExts) {
				return nil
			}

			select {
			case <-done:
				return errors.New("directory walk cancelled")
			case pathChan <- path:
			}
			return nil
		})
	}()
	return pathChan, errChan
}

// consumer reads the path names from the paths channel and
// calls the carving processor against the source image,
// then sends the results on a new channel.
func consumer(
	done <-chan interface{},
	paths <-chan string,
	dest string,
	proc *imageproc.Processor,
	res chan<- result,
) {
	for src := range paths {
		dst := filepath.Join(dest, filepath.Base(src))
		err := processor(src, dst, proc)

		select {
		case <-done:
			return
		case res <- result{
			path: src,
			err:  err,
		}:
		}
	}
}

// processor calls the carving method over the source image and
// returns the error in case it exists, otherwise nil.
func processor(in, out string, proc *imageproc.Processor) error {
	src, dst, err := pathToFile(in, out)
	if err != nil {
		return err
	}
	if f, ok := src.(*os.File); ok && f != os.Stdin {
		defer f.Close()
	}
	if f, ok := dst.(*os.File); ok && f != os.Stdout {
		defer f.Close()
	}

	// Capture the CTRL-C signal and restore back the cursor visibility.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signalChan
		spinner.RestoreCursor()
		os.Exit(1)
	}()

	// Start the progress indicator.
	spinner.Start()
	err = proc.Process(src, dst)

	spinner.StopMsg = fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ IMAGEPROC", utils.StatusMessage),
		utils.DecorateText("is carving the image... ✔", utils.DefaultMessage))

	// Stop the progress indicator.
	spinner.Stop()

	return err
}

// pathToFile converts the source and destination paths to readable and writable files.
func pathToFile(in, out string) (io.Reader, io.Writer, error) {
	var (
		src io.Reader
		dst io.Writer
		err error
	)
	// Check if the source path is a local image or an URL.
	if utils.IsValidUrl(in) {
		src = imgFile
	} else {
		// Check if the source is a pipe name or a regular file.
		if in == pipeName {
			if term.IsTerminal(int(os.Stdin.Fd())) {
				return nil, nil, errors.New("`-` should be used with a pipe for stdin")
			}
			src = os.Stdin
		} else {
			src, err = os.Open(in)
			if err != nil {
				return nil, nil, fmt.Errorf("unable to open the source file: %w", err)
			}
		}
	}

	// Check if the destination is a pipe name or a regular file.
	if out == pipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return nil, nil, errors.New("`-` should be used with a pipe for stdout")
		}
		dst = os.Stdout
	} else {
		dst, err = os.OpenFile(out, os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("unable to create the destination file: %w", err)
		}
	}
	return src, dst, nil
}

// isValidExtension checks if the provided file extension is supported.
func isValidExtension(ext string, exts []string) bool {
	for _, e := range exts {
		if e == ext {
			return true
		}
	}
	return false
}

// printStatus displays the relevant information about the carving process.
func printStatus(fname string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr,
			utils.DecorateText("\nError carving the image: %s", utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err.Error()), utils.DefaultMessage),
		)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr,
		utils.DecorateText("\nThe image has been saved as: %s ✔\n", utils.DefaultMessage),
		utils.DecorateText(filepath.Base(fname), utils.SuccessMessage),
	)
}
