package codec

import (
	"strings"

	"github.com/nmkeyfile/keyfile/pkg/inistore"
	"github.com/nmkeyfile/keyfile/pkg/model"
)

const (
	qdiscKeyPrefix   = "qdisc."
	tfilterKeyPrefix = "tfilter."

	// QdiscRootSentinel is the unspecified-handle token: a qdisc/tfilter
	// attached directly to the device's root, which the domain grammar
	// writes without a "parent " prefix.
	QdiscRootSentinel = "root"
)

// synthesizeTCSpec builds the full domain-library spec string for a
// qdisc/tfilter entry: "parent <parent> <suffix>", or "root <suffix>"
// when parent is the unspecified-handle sentinel.
func synthesizeTCSpec(parent, suffix string) string {
	if parent == QdiscRootSentinel {
		return parent + " " + suffix
	}
	return "parent " + parent + " " + suffix
}

// CollectQdiscs reads every "qdisc.<parent>" key of group.
func CollectQdiscs(store *inistore.Store, group string) []model.QdiscEntry {
	var out []model.QdiscEntry
	for _, k := range store.Keys(group) {
		parent, ok := strings.CutPrefix(k, qdiscKeyPrefix)
		if !ok || parent == "" {
			continue
		}
		suffix, _ := store.GetString(group, k)
		out = append(out, model.QdiscEntry{Parent: parent, Spec: synthesizeTCSpec(parent, suffix)})
	}
	return out
}

// CollectTfilters reads every "tfilter.<parent>" key of group.
func CollectTfilters(store *inistore.Store, group string) []model.TfilterEntry {
	var out []model.TfilterEntry
	for _, k := range store.Keys(group) {
		parent, ok := strings.CutPrefix(k, tfilterKeyPrefix)
		if !ok || parent == "" {
			continue
		}
		suffix, _ := store.GetString(group, k)
		out = append(out, model.TfilterEntry{Parent: parent, Spec: synthesizeTCSpec(parent, suffix)})
	}
	return out
}

// WriteQdiscs / WriteTfilters emit one key per entry, suffix-only (the
// parent-prefixing is re-synthesized on the next read).
func WriteQdiscs(store *inistore.Store, group string, entries []model.QdiscEntry) {
	for _, e := range entries {
		store.SetString(group, qdiscKeyPrefix+e.Parent, tcSuffixOf(e.Parent, e.Spec))
	}
}

func WriteTfilters(store *inistore.Store, group string, entries []model.TfilterEntry) {
	for _, e := range entries {
		store.SetString(group, tfilterKeyPrefix+e.Parent, tcSuffixOf(e.Parent, e.Spec))
	}
}

func tcSuffixOf(parent, spec string) string {
	prefix := synthesizeTCSpec(parent, "")
	return strings.TrimPrefix(spec, prefix)
}
