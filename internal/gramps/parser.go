package gramps

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/beevik/etree"
	"github.com/rs/zerolog"
)

// Parse reads a gzip-compressed Gramps XML archive and returns a fully
// populated Store.
//
// The whole archive is decompressed into memory; archives are assumed to be
// modest in size. Any IO, decompression or XML failure aborts the parse and
// no partial Store is returned. Section entries lacking the required handle
// attribute cannot be registered and are skipped; missing optional
// sub-elements are not errors; unknown element types are ignored.
func Parse(path string, log zerolog.Logger) (*Store, error) {
	log.Info().Str("path", path).Msg("loading gramps archive")

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecompress, path, err)
	}
	defer zr.Close()

	data, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecompress, path, err)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("%w: document has no root element", ErrParse)
	}

	ns := nsForRoot(root)
	store := NewStore()

	parsePersons(store, ns, root, log)
	parseFamilies(store, ns, root, log)
	parseEvents(store, ns, root, log)
	parsePlaces(store, ns, root, log)

	log.Debug().
		Int("persons", len(store.Persons)).
		Int("families", len(store.Families)).
		Int("events", len(store.Events)).
		Int("places", len(store.Places)).
		Msg("archive parsed")
	return store, nil
}

func parsePersons(store *Store, ns nsResolver, root *etree.Element, log zerolog.Logger) {
	for _, node := range ns.findAll(root, "people/person") {
		handle := node.SelectAttrValue("handle", "")
		if handle == "" {
			log.Debug().Str("section", "people").Msg("skipping entry without handle")
			continue
		}
		p := &Person{
			Handle: handle,
			ID:     node.SelectAttrValue("id", ""),
		}
		if gender := ns.child(node, "gender"); gender != nil {
			p.Gender = strings.TrimSpace(gender.Text())
		}
		if name := ns.child(node, "name"); name != nil {
			if first := ns.child(name, "first"); first != nil {
				if text := strings.TrimSpace(first.Text()); text != "" {
					p.FirstNames = strings.Split(text, " ")
				}
			}
			if surname := ns.child(name, "surname"); surname != nil {
				p.Surname = strings.TrimSpace(surname.Text())
				p.Prefix = surname.SelectAttrValue("prefix", "")
			}
		}
		for _, ref := range ns.children(node, "eventref") {
			if h := ref.SelectAttrValue("hlink", ""); h != "" {
				p.EventHandles = append(p.EventHandles, h)
			}
		}
		if childof := ns.child(node, "childof"); childof != nil {
			p.ChildOfHandle = childof.SelectAttrValue("hlink", "")
		}
		for _, ref := range ns.children(node, "parentin") {
			if h := ref.SelectAttrValue("hlink", ""); h != "" {
				p.ParentInHandles = append(p.ParentInHandles, h)
			}
		}
		for _, ref := range ns.children(node, "noteref") {
			if h := ref.SelectAttrValue("hlink", ""); h != "" {
				p.NoteHandles = append(p.NoteHandles, h)
			}
		}
		store.AddPerson(p)
	}
}

func parseFamilies(store *Store, ns nsResolver, root *etree.Element, log zerolog.Logger) {
	for _, node := range ns.findAll(root, "families/family") {
		handle := node.SelectAttrValue("handle", "")
		if handle == "" {
			log.Debug().Str("section", "families").Msg("skipping entry without handle")
			continue
		}
		f := &Family{
			Handle: handle,
			ID:     node.SelectAttrValue("id", ""),
		}
		if mother := ns.child(node, "mother"); mother != nil {
			f.MotherHandle = mother.SelectAttrValue("hlink", "")
		}
		if father := ns.child(node, "father"); father != nil {
			f.FatherHandle = father.SelectAttrValue("hlink", "")
		}
		if rel := ns.child(node, "rel"); rel != nil {
			f.Relationship = rel.SelectAttrValue("type", "")
		}
		for _, ref := range ns.children(node, "eventref") {
			if h := ref.SelectAttrValue("hlink", ""); h != "" {
				f.EventHandles = append(f.EventHandles, h)
			}
		}
		for _, ref := range ns.children(node, "childref") {
			h := ref.SelectAttrValue("hlink", "")
			if h == "" {
				continue
			}
			if ref.SelectAttrValue("frel", "") == "Stepchild" {
				f.StepChildHandles = append(f.StepChildHandles, h)
			} else {
				f.ChildHandles = append(f.ChildHandles, h)
			}
		}
		for _, ref := range ns.children(node, "sourceref") {
			if h := ref.SelectAttrValue("hlink", ""); h != "" {
				f.SourceHandles = append(f.SourceHandles, h)
			}
		}
		store.AddFamily(f)
	}
}

func parseEvents(store *Store, ns nsResolver, root *etree.Element, log zerolog.Logger) {
	for _, node := range ns.findAll(root, "events/event") {
		handle := node.SelectAttrValue("handle", "")
		if handle == "" {
			log.Debug().Str("section", "events").Msg("skipping entry without handle")
			continue
		}
		e := &Event{
			Handle: handle,
			ID:     node.SelectAttrValue("id", ""),
		}
		if typ := ns.child(node, "type"); typ != nil {
			e.Type = strings.TrimSpace(typ.Text())
		}
		if dateval := ns.child(node, "dateval"); dateval != nil {
			e.Date = dateval.SelectAttrValue("val", "")
			e.DateQualifier = dateval.SelectAttrValue("type", "")
		}
		if desc := ns.child(node, "description"); desc != nil {
			e.Description = strings.TrimSpace(desc.Text())
		}
		if place := ns.child(node, "place"); place != nil {
			e.PlaceHandle = place.SelectAttrValue("hlink", "")
		}
		for _, ref := range ns.children(node, "noteref") {
			if h := ref.SelectAttrValue("hlink", ""); h != "" {
				e.NoteHandles = append(e.NoteHandles, h)
			}
		}
		for _, ref := range ns.children(node, "sourceref") {
			if h := ref.SelectAttrValue("hlink", ""); h != "" {
				e.SourceHandles = append(e.SourceHandles, h)
			}
		}
		store.AddEvent(e)
	}
}

func parsePlaces(store *Store, ns nsResolver, root *etree.Element, log zerolog.Logger) {
	for _, node := range ns.findAll(root, "places/placeobj") {
		handle := node.SelectAttrValue("handle", "")
		if handle == "" {
			log.Debug().Str("section", "places").Msg("skipping entry without handle")
			continue
		}
		p := &Place{
			Handle: handle,
			ID:     node.SelectAttrValue("id", ""),
		}
		if title := ns.child(node, "ptitle"); title != nil {
			p.Title = strings.TrimSpace(title.Text())
		}
		if coord := ns.child(node, "coord"); coord != nil {
			p.Lat = coord.SelectAttrValue("lat", "")
			p.Long = coord.SelectAttrValue("long", "")
		}
		store.AddPlace(p)
	}
}
