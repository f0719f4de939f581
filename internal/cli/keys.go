package cli

import "github.com/charmbracelet/bubbles/key"

// watchKeyMap is the key map of the watch widget. It satisfies
// help.KeyMap.
type watchKeyMap struct {
	Start           key.Binding
	End             key.Binding
	CopySimple      key.Binding
	CopyDetailed    key.Binding
	CopySpreadsheet key.Binding
	Help            key.Binding
	Quit            key.Binding
}

func newWatchKeyMap() watchKeyMap {
	return watchKeyMap{
		Start:           key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start")),
		End:             key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "end")),
		CopySimple:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
		CopyDetailed:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "copy detailed")),
		CopySpreadsheet: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "copy for spreadsheet")),
		Help:            key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:            key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k watchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.End, k.CopySimple, k.Help, k.Quit}
}

func (k watchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.End},
		{k.CopySimple, k.CopyDetailed, k.CopySpreadsheet},
		{k.Help, k.Quit},
	}
}
