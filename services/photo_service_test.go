package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhotoUpload(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		contentType string
		size        int64
		wantErr     error
	}{
		{"geçerli jpeg", "anma.jpg", "image/jpeg", 1024, nil},
		{"geçerli png", "anma.PNG", "image/png", 1024, nil},
		{"geçerli webp", "anma.webp", "image/webp", 1024, nil},
		{"izin verilmeyen uzantı", "anma.gif", "image/gif", 1024, ErrPhotoTypeNotAllowed},
		{"uzantı ile içerik türü uyumsuz", "anma.jpg", "application/pdf", 1024, ErrPhotoTypeNotAllowed},
		{"uzantısız dosya", "anma", "image/jpeg", 1024, ErrPhotoTypeNotAllowed},
		{"boyut sınırında", "anma.jpg", "image/jpeg", maxPhotoSize, nil},
		{"boyut sınırı aşıldı", "anma.jpg", "image/jpeg", maxPhotoSize + 1, ErrPhotoTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePhotoUpload(tt.filename, tt.contentType, tt.size)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestGenerateUploadFilename(t *testing.T) {
	first := GenerateUploadFilename("Family Photo.JPG")
	second := GenerateUploadFilename("Family Photo.JPG")

	assert.True(t, strings.HasSuffix(first, ".jpg"), "uzantı küçük harfe çevrilmeli: %s", first)
	assert.NotContains(t, first, " ")
	assert.NotContains(t, first, "Family")
	// Aynı girdiden üretilen adlar çakışmamalı.
	assert.NotEqual(t, first, second)
}
