package trivia

import (
	"encoding/json"
	"fmt"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Topic is a custom question file
type Topic struct {
	Name string
	Path string
}

type topicFile struct {
	Topic     string     `json:"topic" yaml:"topic"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// Topics scans dir for question files (.json, .yaml, .yml)
// The directory is created if it doesn't exist. Files that can't be parsed are skipped.
func Topics(dir string) ([]Topic, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	topics := make([]Topic, 0)
	for _, entry := range entries {
		if entry.IsDir() || !isTopicFile(entry.Name()) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		tf, err := readTopicFile(path)
		if err != nil {
			logrus.WithError(err).WithField("path", path).Debug("skipping topic file")
			continue
		}

		name := tf.Topic
		if name == "" {
			name = entry.Name()
		}

		topics = append(topics, Topic{Name: name, Path: path})
	}

	sort.Slice(topics, func(i, j int) bool {
		return topics[i].Name < topics[j].Name
	})

	return topics, nil
}

// LoadQuestions returns the valid questions in a topic file
func LoadQuestions(path string) ([]Question, error) {
	tf, err := readTopicFile(path)
	if err != nil {
		return nil, err
	}

	questions := make([]Question, 0, len(tf.Questions))
	for _, q := range tf.Questions {
		if q.Valid() {
			questions = append(questions, q)
		}
	}

	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	return questions, nil
}

func isTopicFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	}

	return false
}

func readTopicFile(path string) (*topicFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var tf topicFile
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		err = json.Unmarshal(data, &tf)
	} else {
		err = yaml.Unmarshal(data, &tf)
	}

	if err != nil {
		return nil, err
	}

	if tf.Questions == nil {
		return nil, fmt.Errorf("%s: missing questions list", filepath.Base(path))
	}

	return &tf, nil
}
