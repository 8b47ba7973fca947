package index

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/eee-past-papers/papers/pkg/constants"
	"golang.org/x/net/html/atom"
)

// Page holds the parts of the fixed page template that are not markup.
type Page struct {
	Title       string
	Description string
	Author      string
	FaviconHref string
	FontHref    string
	ShortLink   string
	ContactUser string
	ContactHost string
}

func DefaultPage() Page {
	return Page{
		Title:       constants.WebPageTitle,
		Description: constants.WebPageDescription,
		Author:      constants.WebPageAuthor,
		FaviconHref: constants.WebFaviconHref,
		FontHref:    constants.WebFontHref,
		ShortLink:   constants.WebShortLink,
		ContactUser: constants.WebContactUser,
		ContactHost: constants.WebContactHost,
	}
}

const pageStyle = `
	<style>
		body {
			font-family: 'Roboto', sans-serif;
		}
		.year {
			float: left;
			margin-top: 5px;
			margin-right: 10px;
		}
		.paper {
			margin-left: 10px;
		}
</style>
	<body>
`

const pageAnalytics = `<script>
  (function(i,s,o,g,r,a,m){i['GoogleAnalyticsObject']=r;i[r]=i[r]||function(){
  (i[r].q=i[r].q||[]).push(arguments)},i[r].l=1*new Date();a=s.createElement(o),
  m=s.getElementsByTagName(o)[0];a.async=1;a.src=g;m.parentNode.insertBefore(a,m)
  })(window,document,'script','https://www.google-analytics.com/analytics.js','ga');

  ga('create', 'UA-96943011-1', 'auto');
  ga('send', 'pageview');

</script>
<!-- Global site tag (gtag.js) - Google Analytics -->
<script async src='https://www.googletagmanager.com/gtag/js?id=UA-110453958-1'></script>
<script>
  window.dataLayer = window.dataLayer || [];
  function gtag(){dataLayer.push(arguments);}
  gtag('js', new Date());

  gtag('config', 'UA-110453958-1');
  gtag('config', 'UA-96943011-1');
</script>

<!--[if lt IE 8]>
<script src='details-element-polyfill.js'></script>
<![endif]-->
<!--[if IE 8]>
<script src='details-element-polyfill.js'></script>
<![endif]-->
<!--[if gt IE 8]><!-->
<script src='details-element-polyfill.js'></script>
<!--<![endif]-->
`

// searchDetails opens every <details> whose summary contains the search box
// value (spaces matched as dashes) and closes the others.
const pageSearch = `<script language='JavaScript'>
function searchDetails() {
	var search_box = document.getElementById('search');
	var search_val = search_box.value.replace(' ', '-');
	console.log('Searching...');
	var items = document.getElementsByTagName('summary');
	var opened = [];
	for(var i = 0; i < items.length; i++){
		var name = items[i].innerHTML;
		if((name.toLowerCase().search(search_val.toLowerCase()) != -1) && search_val != ''){
			items[i].parentNode.setAttribute('open','');
			items[i].parentNode.parentNode.setAttribute('open','');
			opened.push(i);
		}
		else{
			items[i].parentNode.removeAttribute('open','');
		}
	}
	for(var j = 0; j < opened.length; j++){
		items[opened[j]].parentNode.parentNode.setAttribute('open','');
	}
}
</script>
<div style='position:fixed;bottom:5px;left:5px;'>
  <input type='text' id='search' onchange='searchDetails();' autofocus placeholder='Search'>
</div>
<iframe name='frame' style='display: none;'></iframe>
</body>
</html>
`

// mail-to is assembled client side so the address never appears whole in the markup
const pageContact = `<script language='JavaScript'>
var username = '%s';
var hostname = '%s';
var linktext = username + '@' + hostname ;
document.write("<a href='" + 'mail' + 'to:' + username + '@' + hostname + "'>" + linktext + "</a>");
</script>`

func (p Page) Header() Node {
	head := El(atom.Head, nil,
		Raw("\n\t\t"), El(atom.Title, nil, Text(p.Title)),
		Raw("\n\t\t"), El(atom.Meta, []Attr{{"charset", "utf-8"}}),
		Raw("\n\t\t"), El(atom.Meta, []Attr{{"name", "description"}, {"content", p.Description}}),
		Raw("\n\t\t"), El(atom.Link, []Attr{{"rel", "shortcut icon"}, {"href", p.FaviconHref}}),
		Raw("\n\t\t"), El(atom.Meta, []Attr{{"name", "author"}, {"content", p.Author}}),
		Raw("\n\t\t"), El(atom.Link, []Attr{{"href", p.FontHref}, {"rel", "stylesheet"}}),
		Raw("\n\t"),
	)

	return Fragment{Raw("\n<html>\n\t"), head, Raw(pageStyle), Raw(pageAnalytics)}
}

func (p Page) Footer() Node {
	notice := El(atom.Div, []Attr{{"style", "position:fixed;bottom:0px;right:10px;"}},
		El(atom.B, nil,
			Text("New shorter link: "),
			El(atom.A, []Attr{{"href", p.ShortLink}}, Text(shortLinkText(p.ShortLink))),
		),
		Text(". Any issues, please email \n"),
		Raw(fmt.Sprintf(pageContact,
			template.JSEscapeString(p.ContactUser),
			template.JSEscapeString(p.ContactHost))),
		Text("."),
	)

	return Fragment{Raw("\n"), notice, Raw("\n"), Raw(pageSearch)}
}

func shortLinkText(link string) string {
	link = strings.TrimPrefix(link, "https://")
	return strings.TrimPrefix(link, "http://")
}
