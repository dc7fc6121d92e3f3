//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"trpc.group/trpc-go/trpc-eval-go/aggregate"
)

// PDF renders the report as an A4 PDF document. The body reuses the
// fixed-width text sections in a monospace font so column alignment
// survives the conversion.
func PDF(m *aggregate.AggregatedMetrics) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Evaluation Report")
	pdf.Ln(14)

	pdf.SetFont("Courier", "", 10)
	body := strings.TrimRight(textBody(m), "\n")
	for _, line := range strings.Split(body, "\n") {
		pdf.Cell(0, 5, line)
		pdf.Ln(5)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("generate pdf: %w", err)
	}
	return buf.Bytes(), nil
}
