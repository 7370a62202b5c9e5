package qrcode

import (
	"strings"

	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"recipebook/config"
	"recipebook/internal/domain/service"
	"recipebook/internal/errors"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates the recipe share code generator from qrcode.* settings
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	qr := cfg.QRCode
	if qr == nil {
		qr = &config.QRCodeConfig{}
	}

	size := qr.Size
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(qr.ErrorCorrectionLevel),
		baseURL:              strings.TrimRight(qr.BaseURL, "/"),
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch level {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// RecipeURL returns "<baseUrl>/recipes/<id>", or a relative path when no base URL is set
func (s *qrcodeService) RecipeURL(recipeID primitive.ObjectID) string {
	return s.baseURL + "/recipes/" + recipeID.Hex()
}

// GenerateRecipeQR renders the recipe URL as a PNG
func (s *qrcodeService) GenerateRecipeQR(recipeID primitive.ObjectID) ([]byte, error) {
	qrCode, err := qrcode.New(s.RecipeURL(recipeID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
