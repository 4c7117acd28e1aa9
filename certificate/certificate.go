// Package certificate decides certificate eligibility and renders the
// certificate image for passed quiz results.
package certificate

import (
	"bytes"
	"fmt"
	"time"

	"quizcert/models"

	"github.com/fogleman/gg"
)

// Canvas size, A4 landscape at 96 DPI
const (
	canvasWidth  = 1123
	canvasHeight = 794
)

// Eligible is the whole contract exposed toward certificate issuance: a
// result earns a certificate iff it belongs to the requesting user and passed.
func Eligible(result *models.Result, userID uint) bool {
	return result != nil && result.UserID == userID && result.Passed
}

// Data carries everything printed on a certificate
type Data struct {
	RecipientName  string
	QuizTitle      string
	Score          int
	CorrectAnswers int
	TotalQuestions int
	IssuedAt       time.Time
	SerialNumber   string
}

// Renderer draws certificate images
type Renderer struct {
	fontPath string
	fontSize float64
}

// NewRenderer creates a renderer. fontPath may be empty, in which case the
// built-in face is used.
func NewRenderer(fontPath string, fontSize int) *Renderer {
	if fontSize <= 0 {
		fontSize = 36
	}
	return &Renderer{fontPath: fontPath, fontSize: float64(fontSize)}
}

// Render produces the certificate as a PNG
func (r *Renderer) Render(data Data) ([]byte, error) {
	dc := gg.NewContext(canvasWidth, canvasHeight)

	// Background and double border
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	dc.SetRGB255(59, 130, 246)
	dc.SetLineWidth(8)
	dc.DrawRectangle(20, 20, canvasWidth-40, canvasHeight-40)
	dc.Stroke()

	dc.SetRGB255(229, 231, 235)
	dc.SetLineWidth(2)
	dc.DrawRectangle(40, 40, canvasWidth-80, canvasHeight-80)
	dc.Stroke()

	if r.fontPath != "" {
		if err := dc.LoadFontFace(r.fontPath, r.fontSize); err != nil {
			return nil, fmt.Errorf("could not load certificate font: %w", err)
		}
	}

	centerX := float64(canvasWidth) / 2

	dc.SetRGB255(59, 130, 246)
	dc.DrawStringAnchored("CERTIFICATE OF ACHIEVEMENT", centerX, 140, 0.5, 0.5)

	dc.SetRGB255(107, 114, 128)
	dc.DrawStringAnchored("This is to certify that", centerX, 230, 0.5, 0.5)

	dc.SetRGB255(31, 41, 55)
	dc.DrawStringAnchored(data.RecipientName, centerX, 310, 0.5, 0.5)
	nameWidth, _ := dc.MeasureString(data.RecipientName)
	dc.SetLineWidth(2)
	dc.DrawLine(centerX-nameWidth/2, 330, centerX+nameWidth/2, 330)
	dc.Stroke()

	dc.SetRGB255(75, 85, 99)
	dc.DrawStringAnchored("has successfully completed", centerX, 400, 0.5, 0.5)

	dc.SetRGB255(59, 130, 246)
	dc.DrawStringAnchored(data.QuizTitle, centerX, 470, 0.5, 0.5)

	scoreLine := fmt.Sprintf("with a score of %d%% (%d/%d correct)",
		data.Score, data.CorrectAnswers, data.TotalQuestions)
	dc.SetRGB255(5, 150, 105)
	dc.DrawStringAnchored(scoreLine, centerX, 540, 0.5, 0.5)

	issued := fmt.Sprintf("Issued on %s", data.IssuedAt.Format("January 2, 2006"))
	dc.SetRGB255(107, 114, 128)
	dc.DrawStringAnchored(issued, centerX, 620, 0.5, 0.5)

	dc.SetRGB255(156, 163, 175)
	dc.DrawStringAnchored("Micro-Certification Platform", centerX, 690, 0.5, 0.5)
	dc.DrawStringAnchored(fmt.Sprintf("Certificate ID: %s", data.SerialNumber), canvasWidth-60, canvasHeight-60, 1, 0.5)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("could not encode certificate: %w", err)
	}

	return buf.Bytes(), nil
}
