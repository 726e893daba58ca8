package bot

import "github.com/fwojciec/docbot"

// mainKeyboard lays the topic buttons out two per row, in catalog order.
func (b *Bot) mainKeyboard() [][]docbot.Button {
	topics := b.Catalog.Topics()
	var rows [][]docbot.Button
	for i := 0; i < len(topics); i += 2 {
		row := []docbot.Button{{Label: topics[i].Name, Key: cmdPrefix + topics[i].Key}}
		if i+1 < len(topics) {
			row = append(row, docbot.Button{Label: topics[i+1].Name, Key: cmdPrefix + topics[i+1].Key})
		}
		rows = append(rows, row)
	}
	return rows
}

// subcategoryKeyboard lists a topic's subcategories one per row, followed by
// a row that returns to the main menu.
func subcategoryKeyboard(topic *docbot.Topic) [][]docbot.Button {
	var rows [][]docbot.Button
	for _, sub := range topic.Subcategories {
		rows = append(rows, []docbot.Button{{Label: sub.Name, Key: topic.Key + "_" + sub.Key}})
	}
	rows = append(rows, backRow())
	return rows
}

func backKeyboard() [][]docbot.Button {
	return [][]docbot.Button{backRow()}
}

func backRow() []docbot.Button {
	return []docbot.Button{{Label: "Back to Commands", Key: backKey}}
}
