package harness

import (
	"slices"

	"github.com/roach88/sandbox/internal/keyedmap"
	"github.com/roach88/sandbox/internal/sequence"
)

// Component names used in op names and final_state assertions.
const (
	ComponentSequence = "sequence"
	ComponentKeyedMap = "keyedmap"
)

// Containers are the instances a scenario operates on.
type Containers struct {
	Sequence *sequence.Store
	KeyedMap *keyedmap.Map
}

// opFunc runs one operation. A nil result means the operation returns
// nothing.
type opFunc func(c *Containers, args Args) (any, error)

// ops maps "<component>.<operation>" to its implementation.
var ops = map[string]opFunc{
	// sequence store
	"sequence.copyIntegers": func(c *Containers, _ Args) (any, error) {
		return c.Sequence.Ints(), nil
	},
	"sequence.copyStrings": func(c *Containers, _ Args) (any, error) {
		return c.Sequence.Strings(), nil
	},
	"sequence.toIntArray": func(c *Containers, _ Args) (any, error) {
		return c.Sequence.IntArray(), nil
	},
	"sequence.countIntegers": func(c *Containers, _ Args) (any, error) {
		return c.Sequence.IntCount(), nil
	},
	"sequence.countStrings": func(c *Containers, _ Args) (any, error) {
		return c.Sequence.StringCount(), nil
	},
	"sequence.addInteger": func(c *Containers, a Args) (any, error) {
		v, err := a.Int("value")
		if err != nil {
			return nil, err
		}
		c.Sequence.AddInt(v)
		return nil, nil
	},
	"sequence.addString": func(c *Containers, a Args) (any, error) {
		v, err := a.Str("value")
		if err != nil {
			return nil, err
		}
		c.Sequence.AddString(v)
		return nil, nil
	},
	"sequence.removeInteger": func(c *Containers, a Args) (any, error) {
		v, err := a.Int("value")
		if err != nil {
			return nil, err
		}
		c.Sequence.RemoveInt(v)
		return nil, nil
	},
	"sequence.removeString": func(c *Containers, a Args) (any, error) {
		v, err := a.Str("value")
		if err != nil {
			return nil, err
		}
		c.Sequence.RemoveString(v)
		return nil, nil
	},
	"sequence.insertInteger": func(c *Containers, a Args) (any, error) {
		v, err := a.Int("value")
		if err != nil {
			return nil, err
		}
		pos, err := a.Int("position")
		if err != nil {
			return nil, err
		}
		c.Sequence.InsertInt(v, pos)
		return nil, nil
	},
	"sequence.removeIntegerAt": func(c *Containers, a Args) (any, error) {
		pos, err := a.Int("position")
		if err != nil {
			return nil, err
		}
		c.Sequence.RemoveIntAt(pos)
		return nil, nil
	},
	"sequence.resetIntegersFrom": func(c *Containers, a Args) (any, error) {
		values, err := a.Floats("values")
		if err != nil {
			return nil, err
		}
		c.Sequence.ResetInts(values)
		return nil, nil
	},
	"sequence.resetStringsFrom": func(c *Containers, a Args) (any, error) {
		objects, err := a.Objects("objects")
		if err != nil {
			return nil, err
		}
		c.Sequence.ResetStrings(objects)
		return nil, nil
	},
	"sequence.absolutizeIntegers": func(c *Containers, _ Args) (any, error) {
		c.Sequence.Absolutize()
		return nil, nil
	},
	"sequence.sortIntegersDescending": func(c *Containers, _ Args) (any, error) {
		c.Sequence.SortIntsDesc()
		return nil, nil
	},
	"sequence.sortStringsAscending": func(c *Containers, _ Args) (any, error) {
		c.Sequence.SortStringsAsc()
		return nil, nil
	},
	"sequence.countOccurrences": func(c *Containers, a Args) (any, error) {
		v, err := a.Int("value")
		if err != nil {
			return nil, err
		}
		return c.Sequence.CountInt(v), nil
	},
	"sequence.countOccurrencesCaseInsensitive": func(c *Containers, a Args) (any, error) {
		v, err := a.Str("value")
		if err != nil {
			return nil, err
		}
		return c.Sequence.CountStringFold(v), nil
	},
	"sequence.countDuplicatedIntegers": func(c *Containers, _ Args) (any, error) {
		return c.Sequence.CountDuplicatedInts(), nil
	},
	"sequence.equalsArray": func(c *Containers, a Args) (any, error) {
		other, err := a.Ints("other")
		if err != nil {
			return nil, err
		}
		return c.Sequence.EqualInts(other), nil
	},
	"sequence.generateIntegers": func(c *Containers, a Args) (any, error) {
		count, err := a.Int("count")
		if err != nil {
			return nil, err
		}
		lo, err := a.Int("min")
		if err != nil {
			return nil, err
		}
		hi, err := a.Int("max")
		if err != nil {
			return nil, err
		}
		c.Sequence.Generate(count, lo, hi)
		return nil, nil
	},

	// keyed string map
	"keyedmap.valuesSortedAscending": func(c *Containers, _ Args) (any, error) {
		return c.KeyedMap.ValuesAsc(), nil
	},
	"keyedmap.keysSortedDescending": func(c *Containers, _ Args) (any, error) {
		return c.KeyedMap.KeysDesc(), nil
	},
	"keyedmap.smallestKey": func(c *Containers, _ Args) (any, error) {
		return c.KeyedMap.SmallestKey(), nil
	},
	"keyedmap.largestValue": func(c *Containers, _ Args) (any, error) {
		return c.KeyedMap.LargestValue(), nil
	},
	"keyedmap.keysUppercased": func(c *Containers, _ Args) (any, error) {
		// sets are reported sorted so traces stay deterministic
		return c.KeyedMap.UpperKeys().Sorted(), nil
	},
	"keyedmap.distinctValueCount": func(c *Containers, _ Args) (any, error) {
		return c.KeyedMap.DistinctValues(), nil
	},
	"keyedmap.addString": func(c *Containers, a Args) (any, error) {
		v, err := a.Str("value")
		if err != nil {
			return nil, err
		}
		c.KeyedMap.Add(v)
		return nil, nil
	},
	"keyedmap.removeByKey": func(c *Containers, a Args) (any, error) {
		k, err := a.Str("key")
		if err != nil {
			return nil, err
		}
		c.KeyedMap.RemoveKey(k)
		return nil, nil
	},
	"keyedmap.removeByValue": func(c *Containers, a Args) (any, error) {
		v, err := a.Str("value")
		if err != nil {
			return nil, err
		}
		c.KeyedMap.RemoveValue(v)
		return nil, nil
	},
	"keyedmap.resetFrom": func(c *Containers, a Args) (any, error) {
		objects, err := a.Objects("objects")
		if err != nil {
			return nil, err
		}
		c.KeyedMap.Reset(objects)
		return nil, nil
	},
	"keyedmap.uppercaseAllKeys": func(c *Containers, _ Args) (any, error) {
		c.KeyedMap.UpperAllKeys()
		return nil, nil
	},
	"keyedmap.containsAllValues": func(c *Containers, a Args) (any, error) {
		candidates, err := a.Strs("candidates")
		if err != nil {
			return nil, err
		}
		return c.KeyedMap.ContainsAll(candidates), nil
	},
}

// Ops returns every supported operation name, sorted.
func Ops() []string {
	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// KnownOp reports whether name is a supported operation.
func KnownOp(name string) bool {
	_, ok := ops[name]
	return ok
}
