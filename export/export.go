// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/name-picker/models"
)

var csvHeader = []string{"Name", "Gender", "Year", "Vote"}

// CSV renders the tally as a Name,Gender,Year,Vote table, liked rows first
func CSV(liked, disliked []models.VoteEntry) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	rows := [][]models.VoteEntry{liked, disliked}
	labels := []string{models.VoteUp.Label(), models.VoteDown.Label()}
	for i, entries := range rows {
		for _, e := range entries {
			record := []string{e.Name, string(e.Gender), strconv.Itoa(e.Year), labels[i]}
			if err := w.Write(record); err != nil {
				return nil, fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// Message is a mail subject/body pair ready for a mail client
type Message struct {
	Subject string
	Body    string
}

// Mail formats the tally for sending by mail
func Mail(liked, disliked []models.VoteEntry) Message {
	subject := fmt.Sprintf("Baby name votes: %s liked, %s disliked",
		humanize.Comma(int64(len(liked))),
		humanize.Comma(int64(len(disliked))),
	)

	var b strings.Builder
	writeSection(&b, "Liked", liked)
	b.WriteString("\n")
	writeSection(&b, "Disliked", disliked)

	return Message{Subject: subject, Body: b.String()}
}

func writeSection(b *strings.Builder, title string, entries []models.VoteEntry) {
	fmt.Fprintf(b, "%s (%s):\n", title, humanize.Comma(int64(len(entries))))
	if len(entries) == 0 {
		b.WriteString("  (none)\n")
		return
	}
	for _, e := range entries {
		fmt.Fprintf(b, "  - %s\n", e.NameRecord)
	}
}

// MailtoURL builds a mailto: link. to may be empty.
func (m Message) MailtoURL(to string) string {
	return "mailto:" + mailtoEscape(to) +
		"?subject=" + mailtoEscape(m.Subject) +
		"&body=" + mailtoEscape(m.Body)
}

// mail clients expect %20, not +
func mailtoEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
