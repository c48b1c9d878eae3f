// package formatter provides functions to export collection data to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/Alfredofh/game-collector-front/internal/models"
	"github.com/Alfredofh/game-collector-front/internal/shared"
)

// ExportToCSV converts a CollectionDetail to CSV format with columns: ID, Name, Platform, Release Year, Value, UPC, EAN
func ExportToCSV(detail *models.CollectionDetail) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Name", "Platform", "Release Year", "Value", "UPC", "EAN"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, game := range detail.VideoGames {
		record := []string{
			strconv.Itoa(game.GameID),
			game.Name,
			game.Platform,
			strconv.Itoa(game.ReleaseYear),
			strconv.FormatFloat(game.Value, 'f', 2, 64),
			game.UPC,
			game.EAN,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a CollectionDetail to Markdown format with optional cover image
func ExportToMarkdown(detail *models.CollectionDetail, imageFilename string) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", detail.Name))

	if imageFilename != "" {
		buf.WriteString(fmt.Sprintf("![Cover](%s)\n\n", imageFilename))
	}

	buf.WriteString(fmt.Sprintf("**Games**: %d\n", len(detail.VideoGames)))
	buf.WriteString(fmt.Sprintf("**Estimated value**: %s\n\n", shared.FormatValue(totalValue(detail))))

	buf.WriteString("## Games\n\n")
	for i, game := range detail.VideoGames {
		yearPart := ""
		if game.ReleaseYear != 0 {
			yearPart = fmt.Sprintf(" (%d)", game.ReleaseYear)
		}
		buf.WriteString(fmt.Sprintf("%d. %s - %s%s [%s]\n", i+1, game.Name, game.Platform, yearPart, shared.FormatValue(game.Value)))
	}

	return buf.Bytes(), nil
}

// ExportToText converts a CollectionDetail to plain text format
func ExportToText(detail *models.CollectionDetail) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Collection: %s\n", detail.Name))
	buf.WriteString(fmt.Sprintf("Games: %d\n\n", len(detail.VideoGames)))

	for i, game := range detail.VideoGames {
		buf.WriteString(fmt.Sprintf("%d. %s - %s\n", i+1, game.Name, game.Platform))
	}

	return buf.Bytes(), nil
}

func totalValue(detail *models.CollectionDetail) float64 {
	var total float64
	for _, game := range detail.VideoGames {
		total += game.Value
	}
	return total
}

// DownloadImage downloads an image from the given URL and returns the raw bytes
func DownloadImage(url string) ([]byte, error) {
	if url == "" {
		return nil, fmt.Errorf("empty URL provided")
	}

	client := &http.Client{
		Timeout: 30 * time.Second,
	}

	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download image: status %d", resp.StatusCode)
	}

	imageData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}

	return imageData, nil
}

// ToMetadataJSON generates a JSON representation of collection metadata (without games)
func ToMetadataJSON(collection models.Collection) ([]byte, error) {
	return shared.MarshalJSON(collection, true)
}

// CSVExportResult contains the paths of files created by WriteCSVExport
type CSVExportResult struct {
	GamesFile    string
	MetadataFile string
}

// WriteCSVExport exports a collection to CSV format with accompanying metadata JSON file.
//
// Defaults to the collection ID as the base filename & creates {base}_games.csv and {base}_metadata.json
func WriteCSVExport(detail *models.CollectionDetail, baseFilepath string) (*CSVExportResult, error) {
	if baseFilepath == "" {
		baseFilepath = strconv.Itoa(detail.CollectionID)
	}

	csvData, err := ExportToCSV(detail)
	if err != nil {
		return nil, fmt.Errorf("failed to generate CSV: %w", err)
	}

	gamesFile := baseFilepath + "_games.csv"
	if err := os.WriteFile(gamesFile, csvData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write CSV file: %w", err)
	}

	metadataJSON, err := ToMetadataJSON(models.Collection{
		CollectionID: detail.CollectionID,
		Name:         detail.Name,
		Created:      detail.Created,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate metadata JSON: %w", err)
	}

	metadataFile := baseFilepath + "_metadata.json"
	if err := os.WriteFile(metadataFile, metadataJSON, 0644); err != nil {
		return nil, fmt.Errorf("failed to write metadata file: %w", err)
	}

	return &CSVExportResult{
		GamesFile:    gamesFile,
		MetadataFile: metadataFile,
	}, nil
}

// MarkdownExportResult contains information about files created by WriteMarkdownExport
type MarkdownExportResult struct {
	Directory  string
	Files      []string
	CoverImage string
}

// WriteMarkdownExport exports a collection to Markdown format in a dedicated directory.
//
// Directory name defaults to the collection ID.
// The imageURL parameter is optional - if provided, attempts to download a cover image.
// Creates a directory structure: {dir}/README.md and optionally {dir}/cover.jpg
func WriteMarkdownExport(detail *models.CollectionDetail, outputDir string, imageURL string) (*MarkdownExportResult, error) {
	if outputDir == "" {
		outputDir = strconv.Itoa(detail.CollectionID)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	result := &MarkdownExportResult{
		Directory: outputDir,
		Files:     []string{},
	}

	var coverImageFilename string
	if imageURL != "" {
		imageData, err := DownloadImage(imageURL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to download cover image: %v\n", err)
		} else {
			coverImageFilename = "cover.jpg"
			coverImagePath := fmt.Sprintf("%s/%s", outputDir, coverImageFilename)
			if err := os.WriteFile(coverImagePath, imageData, 0644); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to save cover image: %v\n", err)
				coverImageFilename = ""
			} else {
				result.CoverImage = coverImagePath
				result.Files = append(result.Files, coverImagePath)
			}
		}
	}

	mdData, err := ExportToMarkdown(detail, coverImageFilename)
	if err != nil {
		return nil, fmt.Errorf("failed to generate Markdown: %w", err)
	}

	mdFile := fmt.Sprintf("%s/README.md", outputDir)
	if err := os.WriteFile(mdFile, mdData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write Markdown file: %w", err)
	}

	result.Files = append(result.Files, mdFile)

	return result, nil
}

// WriteTextExport exports a collection to plain text format.
//
// Defaults to {collection ID}_games.txt as the filename.
func WriteTextExport(detail *models.CollectionDetail, filepath string) (string, error) {
	if filepath == "" {
		filepath = fmt.Sprintf("%d_games.txt", detail.CollectionID)
	}

	textData, err := ExportToText(detail)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if err := os.WriteFile(filepath, textData, 0644); err != nil {
		return "", fmt.Errorf("failed to write text file: %w", err)
	}

	return filepath, nil
}
