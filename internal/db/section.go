package db

import "gorm.io/gorm"

// MaxSectionContentLength bounds the rich text of a single section.
const MaxSectionContentLength = 500

// Section is one editable content block on the public page. ImagePath and
// VideoPath hold filenames relative to the upload directory; empty means no
// asset is set.
type Section struct {
	gorm.Model
	Content   string `gorm:"size:500"`
	ImagePath string `gorm:"size:500"`
	VideoPath string `gorm:"size:500"`
	Position  int    `gorm:"not null"`
}

// ListOrderedSections returns all sections sorted by display position,
// breaking ties by id so the order is stable.
func ListOrderedSections(gdb *gorm.DB) ([]Section, error) {
	var sections []Section
	if err := gdb.Order("position asc").Order("id asc").Find(&sections).Error; err != nil {
		return nil, err
	}
	return sections, nil
}

// SeedSections inserts the initial page sections on first boot. It does
// nothing when any section already exists.
func SeedSections(gdb *gorm.DB) error {
	var count int64
	if err := gdb.Model(&Section{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	sections := []Section{
		{Content: `<h1>Welcome to ThreadCraft</h1><p class="featured-text">Where Style Meets Comfort</p>`, Position: 1},
		{Content: `<h2>Crafting Premium T-Shirts Since 2020</h2>`, Position: 2},
		{Content: `<h2>Our Collection</h2>`, Position: 3},
		{Content: `<h2>Sustainable Fashion</h2>`, Position: 4},
		{Content: `<h2>Design Your Perfect Tee</h2>`, Position: 5},
		{Content: `<h2>Join Our Fashion Community</h2>`, Position: 6},
	}

	return gdb.Create(&sections).Error
}
