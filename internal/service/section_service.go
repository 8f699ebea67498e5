package service

import (
	"errors"
	"fmt"
	"io"
	"log"
	"unicode/utf8"

	"github.com/threadcraft/internal/db"
	"gorm.io/gorm"
)

var (
	ErrSectionNotFound = errors.New("section not found")
	ErrContentTooLong  = errors.New("content exceeds maximum length")
)

// AssetUpload carries one uploaded file destined for a section slot.
type AssetUpload struct {
	Filename string
	Data     io.Reader
}

// SectionUpdateInput represents one edit request against a section. A nil
// Image or Video leaves that slot untouched.
type SectionUpdateInput struct {
	Content string
	Image   *AssetUpload
	Video   *AssetUpload
}

// SectionService coordinates section edits: text validation, asset
// replacement and the atomic persist of the combined change.
type SectionService struct {
	db     *gorm.DB
	assets *AssetService
}

// NewSectionService returns a SectionService backed by the given database
// handle and asset store.
func NewSectionService(gdb *gorm.DB, assets *AssetService) *SectionService {
	return &SectionService{db: gdb, assets: assets}
}

// ListOrdered returns all sections in display order.
func (s *SectionService) ListOrdered() ([]db.Section, error) {
	return db.ListOrderedSections(s.db)
}

// Get fetches a single section by id.
func (s *SectionService) Get(id uint) (*db.Section, error) {
	var section db.Section
	if err := s.db.First(&section, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}
	return &section, nil
}

// sectionSlot binds an asset kind to the column it lands in, so image and
// video uploads share one code path without reflection.
type sectionSlot struct {
	kind   AssetKind
	upload *AssetUpload
	column string
	old    string
}

// Update applies one edit request to a section. Validation failures return
// before anything is written; new assets are stored before the record is
// persisted, and the replaced files are only deleted after the persist
// succeeds, so a failure part-way never leaves the section pointing at a
// missing file. Any failure after a new asset was stored orphans that file
// on disk, which is tolerated and logged.
func (s *SectionService) Update(id uint, input SectionUpdateInput) (*db.Section, error) {
	var section db.Section
	if err := s.db.First(&section, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}

	if utf8.RuneCountInString(input.Content) > db.MaxSectionContentLength {
		return nil, ErrContentTooLong
	}

	updates := map[string]interface{}{"content": input.Content}

	var stored []string
	var replaced []string

	slots := []sectionSlot{
		{kind: AssetImage, upload: input.Image, column: "image_path", old: section.ImagePath},
		{kind: AssetVideo, upload: input.Video, column: "video_path", old: section.VideoPath},
	}

	for _, slot := range slots {
		if slot.upload == nil {
			continue
		}

		if !s.assets.ValidateExtension(slot.upload.Filename, slot.kind) {
			logOrphans(stored)
			return nil, fmt.Errorf("%w: invalid %s file", ErrInvalidFileType, slot.kind)
		}

		name, err := s.assets.Store(slot.upload.Data, slot.upload.Filename)
		if err != nil {
			logOrphans(stored)
			return nil, err
		}

		stored = append(stored, name)
		updates[slot.column] = name
		if slot.old != "" {
			replaced = append(replaced, slot.old)
		}
	}

	if err := s.db.Model(&section).Updates(updates).Error; err != nil {
		logOrphans(stored)
		return nil, fmt.Errorf("persist section %d: %w", id, err)
	}

	// The record now points at the new assets; the replaced files are safe
	// to delete.
	for _, old := range replaced {
		s.assets.Remove(old)
	}

	if err := s.db.First(&section, id).Error; err != nil {
		return nil, err
	}
	return &section, nil
}

func logOrphans(stored []string) {
	for _, name := range stored {
		log.Printf("orphaned asset left after failed update: %s", name)
	}
}
