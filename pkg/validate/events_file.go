package validate

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gunvolt24/food_orders/internal/domain"
)

// InputFormat допустимые значения.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"
	FormatJSONL InputFormat = "jsonl"
)

// EmitFunc - получатель валидного события (вывод, публикация в Kafka).
type EmitFunc func(ev *domain.DeliveryStatusEvent) error

// JSONLResult - статистика проверки потока JSONL.
type JSONLResult struct {
	ValidLinesCount   int
	InvalidLinesCount int
}

func (r JSONLResult) String() string {
	return fmt.Sprintf("%d valid / %d invalid", r.ValidLinesCount, r.InvalidLinesCount)
}

// ValidateEventsFile - проверяет файл событий доставки (JSON или JSONL)
// и передаёт валидные события в emit. Возвращает сводку "N valid / M invalid".
func ValidateEventsFile(filePath string, format InputFormat, emit EmitFunc) (string, error) {
	if format == FormatAuto {
		if strings.EqualFold(filepath.Ext(filePath), ".jsonl") {
			format = FormatJSONL
		} else {
			format = FormatJSON
		}
	}

	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	switch format {
	case FormatJSON:
		raw, err := io.ReadAll(file)
		if err != nil {
			return "", fmt.Errorf("read file: %w", err)
		}
		ev, err := DeliveryEventFromJSON(raw)
		if err != nil {
			return JSONLResult{InvalidLinesCount: 1}.String(), err
		}
		if err := emit(ev); err != nil {
			return "", fmt.Errorf("emit event: %w", err)
		}
		return JSONLResult{ValidLinesCount: 1}.String(), nil

	case FormatJSONL:
		res, err := ValidateEventsJSONL(file, emit)
		if err != nil {
			return "", err
		}
		return res.String(), nil

	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// ValidateEventsJSONL - построчная проверка; пустые строки пропускаются,
// невалидные считаются, но не прерывают чтение.
func ValidateEventsJSONL(ir io.Reader, emit EmitFunc) (JSONLResult, error) {
	var res JSONLResult

	scanner := bufio.NewScanner(ir)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		ev, err := DeliveryEventFromJSON(line)
		if err != nil {
			res.InvalidLinesCount++
			continue
		}
		if err := emit(ev); err != nil {
			return res, fmt.Errorf("emit event: %w", err)
		}
		res.ValidLinesCount++
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("scan: %w", err)
	}
	return res, nil
}
