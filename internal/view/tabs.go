// Package view defines the per-screen view models the gateway renders.
// Each screen's state lives in an explicit struct handed to its handlers
// instead of globals scattered across the page.
package view

// Tab is one selectable panel of a side menu.
type Tab struct {
    ID     string `json:"id"`
    Titulo string `json:"titulo"`
    Activa bool   `json:"activa"`
}

// TabSet keeps the invariant that exactly one tab is active at all times.
type TabSet struct {
    Tabs []Tab `json:"tabs"`
}

// NuevoTabSet builds a tab set with the given tab active.  When the id
// names no tab, the first one starts active.
func NuevoTabSet(activa string, tabs ...Tab) *TabSet {
    ts := &TabSet{Tabs: tabs}
    if !ts.Activar(activa) && len(ts.Tabs) > 0 {
        ts.Tabs[0].Activa = true
    }
    return ts
}

// Activar makes the named tab the active one and reports whether it
// exists.  An unknown id changes nothing.
func (ts *TabSet) Activar(id string) bool {
    idx := -1
    for i, t := range ts.Tabs {
        if t.ID == id {
            idx = i
            break
        }
    }
    if idx < 0 {
        return false
    }
    for i := range ts.Tabs {
        ts.Tabs[i].Activa = i == idx
    }
    return true
}

// Activa returns the id of the currently active tab.
func (ts *TabSet) Activa() string {
    for _, t := range ts.Tabs {
        if t.Activa {
            return t.ID
        }
    }
    return ""
}
