package codec

import (
	"sort"
	"strconv"
	"strings"

	"github.com/nmkeyfile/keyfile/pkg/inistore"
	"github.com/nmkeyfile/keyfile/pkg/model"
)

const sriovVFKeyPrefix = "vf."

// CollectVFs reads every "vf.<N>" key of group, in numerically ascending
// <N> order. The descriptor value is kept opaque, as written by the
// domain library's own VF-descriptor grammar.
func CollectVFs(store *inistore.Store, group string) []model.VF {
	type indexed struct {
		n    uint64
		vf   model.VF
	}
	var found []indexed
	for _, k := range store.Keys(group) {
		if !strings.HasPrefix(k, sriovVFKeyPrefix) {
			continue
		}
		suffix := k[len(sriovVFKeyPrefix):]
		if suffix == "" || !allDigits(suffix) {
			continue
		}
		n, err := strconv.ParseUint(suffix, 10, 32)
		if err != nil {
			continue
		}
		v, _ := store.GetString(group, k)
		found = append(found, indexed{n: n, vf: model.VF{Index: uint32(n), Descr: v}})
	}
	sort.Slice(found, func(i, j int) bool { return found[i].n < found[j].n })
	out := make([]model.VF, len(found))
	for i, f := range found {
		out[i] = f.vf
	}
	return out
}

// WriteVFs emits each VF as its own "vf.<N>" key.
func WriteVFs(store *inistore.Store, group string, vfs []model.VF) {
	for _, vf := range vfs {
		store.SetString(group, sriovVFKeyPrefix+strconv.FormatUint(uint64(vf.Index), 10), vf.Descr)
	}
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
