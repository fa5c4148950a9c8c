package nova

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Class names that mark the structure of a song entry on the station's page.
// A single entry looks like this:
//
//	<div class="wwtt_content">
//	    <p class="time">03:07</p>
//	    <div class="wwtt_right">
//	        <div class="wwtt_imgcontent">
//	            <a class="img_wwtt"><img ... /></a>
//	        </div>
//	        <h2><a>JOHN FAHEY</a></h2>
//	        <p>SUNFLOWER RIVER BLUES</p>
//	    </div>
//	</div>
const (
	songClass    = "wwtt_content"
	detailsClass = "wwtt_right"
	timeClass    = "time"
)

// recordTarget names the song field the next text event is recorded as.
type recordTarget int

const (
	recordNothing recordTarget = iota
	recordArtist
	recordTitle
	recordTime
)

// Parser extracts recently played songs from the station's markup. It is a
// small state machine driven by tokenizer events and never builds a
// document tree. A Parser is not safe for concurrent use; independent
// parsers share no state.
//
// Bytes given to Write are only tokenized by Close, so tokens passed to
// HandleToken while a Write is pending are seen before them. Use Extract to
// tokenize while reading.
type Parser struct {
	songs  []Song
	record map[string]string

	inSong   bool
	inArtist bool
	inTitle  bool

	// Only one field can be waiting for text at a time.
	target recordTarget

	caser cases.Caser
	buf   bytes.Buffer
}

// NewParser returns a parser in its initial state.
func NewParser() *Parser {
	return &Parser{
		record: map[string]string{},
		caser:  cases.Title(language.Und),
	}
}

// ExtractString returns the songs found in a complete document.
func ExtractString(doc string) []Song {
	return Extract(strings.NewReader(doc))
}

// Extract tokenizes r as it is read and returns the songs found in it. Read
// errors other than io.EOF end the document early.
func Extract(r io.Reader) []Song {
	p := NewParser()
	p.consume(r)
	return p.finish()
}

// Write buffers a chunk of the document. Chunks must arrive in document
// order. Nothing is tokenized until Close, so that tags and text split
// across chunk boundaries are seen whole.
func (p *Parser) Write(b []byte) (int, error) {
	return p.buf.Write(b)
}

// Close tokenizes everything written so far and returns the songs found. The
// parser is then back in its initial state, ready for another document.
func (p *Parser) Close() []Song {
	p.consume(&p.buf)
	return p.finish()
}

func (p *Parser) consume(r io.Reader) {
	z := html.NewTokenizer(r)
	for {
		if z.Next() == html.ErrorToken {
			return
		}
		p.HandleToken(z.Token())
	}
}

// HandleToken advances the state machine by one markup event. End tags,
// comments and doctypes carry no song data and are ignored.
func (p *Parser) HandleToken(tok html.Token) {
	switch tok.Type {
	case html.StartTagToken, html.SelfClosingTagToken:
		p.handleStartTag(tok)
	case html.TextToken:
		p.handleText(tok.Data)
	}
}

// Songs returns the songs committed so far, plus the pending record when it
// is complete. It is the end-of-document step and resets the parser.
func (p *Parser) Songs() []Song {
	return p.finish()
}

func (p *Parser) finish() []Song {
	p.commit()
	songs := p.songs
	p.songs = nil
	p.inSong = false
	p.inArtist = false
	p.inTitle = false
	p.target = recordNothing
	return songs
}

func (p *Parser) handleStartTag(tok html.Token) {
	switch {
	case tok.DataAtom == atom.Div && hasClass(tok, songClass):
		p.commit()
		p.inSong = true
		p.inArtist = false
		p.inTitle = false
		p.target = recordNothing
	case tok.DataAtom == atom.H2 && p.inSong && !p.inArtist:
		p.inArtist = true
	case tok.DataAtom == atom.A && p.inArtist:
		p.target = recordArtist
	case tok.DataAtom == atom.Div && hasClass(tok, detailsClass):
		p.inTitle = true
	case tok.DataAtom == atom.P && p.inTitle:
		p.target = recordTitle
	case tok.DataAtom == atom.P && hasClass(tok, timeClass):
		// The time may precede the artist and title within an entry.
		p.target = recordTime
	}
}

func (p *Parser) handleText(data string) {
	text := strings.TrimSpace(data)
	if text == "" {
		return
	}

	switch p.target {
	case recordArtist:
		p.record[fieldArtist] = p.caser.String(text)
		p.inArtist = false
	case recordTitle:
		// The title is the last field of an entry, so the entry scope ends
		// here.
		p.record[fieldTitle] = p.caser.String(text)
		p.inTitle = false
		p.inSong = false
	case recordTime:
		p.record[fieldTime] = text
	default:
		return
	}
	p.target = recordNothing
}

// commit appends the pending record when it is complete and starts a new
// one either way.
func (p *Parser) commit() {
	if isCompleteSong(p.record) {
		p.songs = append(p.songs, songFromRecord(p.record))
	}
	p.record = map[string]string{}
}

// hasClass reports whether the element's class attribute contains name as
// one of its whitespace-separated tokens.
func hasClass(tok html.Token, name string) bool {
	for _, attr := range tok.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, class := range strings.Fields(attr.Val) {
			if class == name {
				return true
			}
		}
	}
	return false
}
