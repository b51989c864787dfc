package translate

// Cache memoizes translations within a run so identical meanings are only
// sent to the provider once per language
type Cache struct {
	translations map[string]string
}

// NewCache creates an empty translation cache
func NewCache() *Cache {
	return &Cache{
		translations: make(map[string]string),
	}
}

func cacheKey(text, langCode string) string {
	return langCode + "\x1f" + text
}

// Add stores a translation
func (c *Cache) Add(text, langCode, translation string) {
	c.translations[cacheKey(text, langCode)] = translation
}

// Get retrieves a stored translation
func (c *Cache) Get(text, langCode string) (string, bool) {
	translation, ok := c.translations[cacheKey(text, langCode)]
	return translation, ok
}

// Len returns the number of cached translations
func (c *Cache) Len() int {
	return len(c.translations)
}
