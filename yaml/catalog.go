// Package yaml provides a YAML-backed implementation of
// docbot.CatalogService. The catalog is a static, versioned table of
// topic → URL / subcategory tree, parsed and validated once at process
// start.
package yaml

import (
	"github.com/fwojciec/docbot"
	"gopkg.in/yaml.v3"
)

// Compile-time interface verification.
var _ docbot.CatalogService = (*Catalog)(nil)

// Catalog is an immutable topic catalog parsed from a YAML document.
type Catalog struct {
	topics []*docbot.Topic
	byKey  map[string]*docbot.Topic
}

// catalogDoc mirrors the YAML document shape. Topics and subcategories are
// sequences, so catalog order is the document order.
type catalogDoc struct {
	Topics []topicDoc `yaml:"topics"`
}

type topicDoc struct {
	Key           string   `yaml:"key"`
	Name          string   `yaml:"name"`
	URL           string   `yaml:"url"`
	Subcategories []subDoc `yaml:"subcategories"`
}

type subDoc struct {
	Key       string   `yaml:"key"`
	Name      string   `yaml:"name"`
	URL       string   `yaml:"url"`
	Subtopics []string `yaml:"subtopics"`
}

// ParseCatalog parses and validates a YAML catalog document.
func ParseCatalog(data []byte) (*Catalog, error) {
	var doc catalogDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, docbot.Errorf(docbot.EINVALID, "failed to parse catalog: %v", err)
	}
	if len(doc.Topics) == 0 {
		return nil, docbot.Errorf(docbot.EINVALID, "catalog has no topics")
	}

	c := &Catalog{byKey: make(map[string]*docbot.Topic, len(doc.Topics))}
	for _, td := range doc.Topics {
		topic := &docbot.Topic{
			Key:  td.Key,
			Name: td.Name,
			URL:  td.URL,
		}
		for _, sd := range td.Subcategories {
			topic.Subcategories = append(topic.Subcategories, &docbot.Subcategory{
				Key:       sd.Key,
				Name:      sd.Name,
				URL:       sd.URL,
				Subtopics: sd.Subtopics,
			})
		}
		if err := topic.Validate(); err != nil {
			return nil, err
		}
		if _, ok := c.byKey[topic.Key]; ok {
			return nil, docbot.Errorf(docbot.EINVALID, "duplicate topic key %q", topic.Key)
		}
		c.topics = append(c.topics, topic)
		c.byKey[topic.Key] = topic
	}

	return c, nil
}

// Topic returns the topic with the given key.
func (c *Catalog) Topic(key string) (*docbot.Topic, error) {
	topic, ok := c.byKey[key]
	if !ok {
		return nil, docbot.Errorf(docbot.ENOTFOUND, "topic %q not found", key)
	}
	return topic, nil
}

// Subcategory returns the named subcategory of a topic.
func (c *Catalog) Subcategory(topicKey, subKey string) (*docbot.Subcategory, error) {
	topic, err := c.Topic(topicKey)
	if err != nil {
		return nil, err
	}
	sub := topic.Subcategory(subKey)
	if sub == nil {
		return nil, docbot.Errorf(docbot.ENOTFOUND, "subcategory %q of topic %q not found", subKey, topicKey)
	}
	return sub, nil
}

// Topics returns all topics in catalog order.
func (c *Catalog) Topics() []*docbot.Topic {
	return c.topics
}
