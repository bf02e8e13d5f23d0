package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"skinner/resume-feedback/internal/models"
	"skinner/resume-feedback/internal/services"
)

// extract runs the extraction and summary stages over local résumé files
// without calling the LLM.
func main() {
	sentences := flag.Int("sentences", services.DefaultSummarySentences, "number of sentences in the summary")
	showText := flag.Bool("text", false, "print the full extracted text")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: extract [-sentences N] [-text] file.pdf|file.docx ...")
		os.Exit(2)
	}

	extractor := services.NewExtractorService(
		services.NewPDFParser(),
		services.NewDOCXParser(),
	)
	summarizer := services.NewSentenceSummarizer(*sentences)

	successCount := 0
	failCount := 0

	for _, path := range flag.Args() {
		log.Printf("\n📄 Processing: %s", path)

		format, err := services.ValidateFilename(filepath.Base(path))
		if err != nil {
			log.Printf("   ❌ %v", err)
			failCount++
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("   ❌ Failed to read file: %v", err)
			failCount++
			continue
		}

		text, err := extractor.Extract(&models.UploadedDocument{
			Filename: filepath.Base(path),
			Format:   format,
			Data:     data,
		})
		if err != nil {
			log.Printf("   ❌ Failed to extract text: %v", err)
			failCount++
			continue
		}

		log.Printf("   ✅ Extracted %d characters, %d lines", len(text), strings.Count(text, "\n")+1)
		log.Printf("   📝 Summary: %s", summarizer.Summarize(text))
		if *showText {
			fmt.Println(text)
		}
		successCount++
	}

	log.Println("\n" + strings.Repeat("=", 60))
	log.Printf("📊 Extraction Summary:")
	log.Printf("   ✅ Successful: %d documents", successCount)
	log.Printf("   ❌ Failed: %d documents", failCount)
	log.Println(strings.Repeat("=", 60))

	if failCount > 0 {
		os.Exit(1)
	}
}
