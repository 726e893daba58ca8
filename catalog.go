package docbot

// Topic represents a top-level documentation topic. A topic either points
// at a single documentation page (URL only) or carries an ordered list of
// subcategories, each with its own page.
type Topic struct {
	Key           string
	Name          string
	URL           string
	Subcategories []*Subcategory
}

// Categorized reports whether the topic requires a subcategory choice
// before a question can be answered against a specific page.
func (t *Topic) Categorized() bool {
	return len(t.Subcategories) > 0
}

// Subcategory returns the subcategory with the given key.
// Returns nil if the topic has no such subcategory.
func (t *Topic) Subcategory(key string) *Subcategory {
	for _, sub := range t.Subcategories {
		if sub.Key == key {
			return sub
		}
	}
	return nil
}

// Validate returns an error if the topic contains invalid fields.
func (t *Topic) Validate() error {
	if t.Key == "" {
		return Errorf(EINVALID, "topic key required")
	}
	if t.URL == "" {
		return Errorf(EINVALID, "topic %q URL required", t.Key)
	}
	for _, sub := range t.Subcategories {
		if sub.Key == "" {
			return Errorf(EINVALID, "topic %q subcategory key required", t.Key)
		}
		if sub.URL == "" {
			return Errorf(EINVALID, "subcategory %q URL required", sub.Key)
		}
	}
	return nil
}

// Subcategory represents one section of a categorized topic.
type Subcategory struct {
	Key         string
	Name        string
	URL         string
	Subtopics   []string
}

// CatalogService is a read-only lookup over the static topic catalog.
// The catalog is loaded once at process start and never mutated.
//
// Lookups return ENOTFOUND for unknown keys. An unknown key is a normal,
// expected outcome (the user typed a topic that is not documented yet);
// callers must render guidance text rather than propagate an error.
type CatalogService interface {
	// Topic returns the topic with the given key.
	// Returns ENOTFOUND if the topic does not exist.
	Topic(key string) (*Topic, error)

	// Subcategory returns the named subcategory of a topic.
	// Returns ENOTFOUND if either the topic or the subcategory is unknown.
	Subcategory(topicKey, subKey string) (*Subcategory, error)

	// Topics returns all topics in catalog order.
	Topics() []*Topic
}
