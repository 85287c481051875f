package color

type Entry struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

type Bucket struct {
	Name    string
	Entries []Entry
}

type Palette []Bucket

// DefaultPalette groups the glow colors into warm, cool and purple-pink.
func DefaultPalette() Palette {
	return Palette{
		{Name: "warm", Entries: []Entry{
			{Label: "Red", Color: "hsla(0, 100%, 55%, 0.9)"},
			{Label: "Light Red", Color: "hsla(15, 100%, 55%, 0.9)"},
			{Label: "Orange", Color: "hsla(30, 100%, 55%, 0.9)"},
			{Label: "Gold", Color: "hsla(45, 100%, 55%, 0.9)"},
			{Label: "Pale Gold", Color: "hsla(54, 100%, 63%, 0.9)"},
			{Label: "Yellow", Color: "hsla(60, 100%, 55%, 0.9)"},
		}},
		{Name: "cool", Entries: []Entry{
			{Label: "Light Yellow", Color: "hsla(75, 100%, 55%, 0.9)"},
			{Label: "Lime", Color: "hsla(90, 100%, 55%, 0.9)"},
			{Label: "Light Green", Color: "hsla(150, 100%, 55%, 0.9)"},
			{Label: "Cyan", Color: "hsla(180, 100%, 55%, 0.9)"},
		}},
		{Name: "purple-pink", Entries: []Entry{
			{Label: "Purple", Color: "hsla(270, 100%, 55%, 0.9)"},
			{Label: "Lavender", Color: "hsla(285, 100%, 55%, 0.9)"},
			{Label: "Magenta", Color: "hsla(300, 100%, 55%, 0.8)"},
			{Label: "Pink", Color: "hsla(330, 100%, 55%, 0.9)"},
		}},
	}
}

// Clone copies the palette so shuffling never touches the caller's slices.
func (p Palette) Clone() Palette {
	out := make(Palette, len(p))
	for i, b := range p {
		out[i] = Bucket{Name: b.Name, Entries: append([]Entry(nil), b.Entries...)}
	}
	return out
}

// Flatten concatenates the buckets in order.
func (p Palette) Flatten() []Entry {
	var out []Entry
	for _, b := range p {
		out = append(out, b.Entries...)
	}
	return out
}

func (p Palette) Size() int {
	n := 0
	for _, b := range p {
		n += len(b.Entries)
	}
	return n
}
