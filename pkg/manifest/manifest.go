// Package manifest defines the contract for resolving the authoritative
// Heroicons set, plus the YAML snapshot codec used to persist the last
// successful fetch in the cache directory.
package manifest

import (
	"context"
	"fmt"
	"sort"

	"github.com/goliatone/go-icongen/pkg/heroicons"
	"gopkg.in/yaml.v3"
)

// SnapshotFilename is the icon-list snapshot stored under the cache dir.
const SnapshotFilename = "heroicons-list.yaml"

// Source yields the set of recognized icon names. Implementations degrade to
// an empty set when neither the network nor a cached snapshot is usable;
// downstream stages then skip validation instead of failing.
type Source interface {
	Fetch(ctx context.Context) (heroicons.Set, error)
}

// snapshot is the on-disk YAML shape: icon name to available variants.
type snapshot struct {
	Icons map[string][]string `yaml:"icons"`
}

// EncodeSnapshot serializes a set for the cache directory. Keys and variant
// lists are emitted sorted so consecutive snapshots of the same set are
// byte-identical.
func EncodeSnapshot(set heroicons.Set) ([]byte, error) {
	snap := snapshot{Icons: make(map[string][]string, len(set))}
	for name, variants := range set {
		vs := make([]string, 0, len(variants))
		for _, v := range variants {
			vs = append(vs, string(v))
		}
		sort.Strings(vs)
		snap.Icons[string(name)] = vs
	}
	data, err := yaml.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("manifest: encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a cached snapshot back into a set. Unknown variant
// strings are dropped rather than failing the whole snapshot.
func DecodeSnapshot(data []byte) (heroicons.Set, error) {
	var snap snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("manifest: decode snapshot: %w", err)
	}
	set := make(heroicons.Set, len(snap.Icons))
	for name, variants := range snap.Icons {
		for _, v := range variants {
			if variant := heroicons.Variant(v); variant.Valid() {
				set.Add(heroicons.Name(name), variant)
			}
		}
	}
	return set, nil
}
