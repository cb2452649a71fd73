package brand

import "strings"

// NavItem is a rendered navigation entry for the shared page header.
type NavItem struct {
	Href   string
	Label  string
	Active bool
}

// Nav renders the profile's route table as header navigation with active
// state for the current path. The home route keeps the brand name as label;
// other labels derive from the path segment.
func (p Profile) Nav(currentPath string) []NavItem {
	if currentPath == "" {
		currentPath = "/"
	}
	items := make([]NavItem, 0, len(p.Routes))
	for _, rt := range p.Routes {
		items = append(items, NavItem{
			Href:   rt.Path,
			Label:  p.navLabel(rt),
			Active: navActive(rt.Path, currentPath),
		})
	}
	return items
}

func (p Profile) navLabel(rt Route) string {
	if rt.Path == "/" || rt.Path == "/alt" {
		return p.SiteName
	}
	seg := strings.TrimPrefix(rt.Path, "/")
	seg = strings.ReplaceAll(seg, "-", " ")
	if seg == "" {
		return p.SiteName
	}
	r := []rune(seg)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] -= 'a' - 'A'
	}
	return string(r)
}

func navActive(itemPath, currentPath string) bool {
	if itemPath == "/" {
		return currentPath == "/"
	}
	if currentPath == itemPath {
		return true
	}
	return strings.HasPrefix(currentPath, itemPath+"/")
}
