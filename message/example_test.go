package message_test

import (
	"fmt"
	"strings"

	"github.com/zostay/go-mailbody/message"
)

const exampleMsg = `From: Sender <sender@example.test>
To: receiver@example.test
Subject: =?ISO-2022-JP?B?GyRCJTklRiE8JS0bKEI=?=
Date: Tue, 5 Mar 2019 19:00:00 +0900
Content-Type: multipart/alternative; boundary="alt"

--alt
Content-Type: text/plain; charset="ISO-2022-JP"
Content-Transfer-Encoding: base64

GyRCJV8lRyUjJSIlYCVsJSIkRyQqNGokJCQ3JF4kORsoQg==
--alt
Content-Type: text/html; charset="UTF-8"

<p>Medium rare, please.</p>
--alt--
`

func ExampleParse() {
	msg, err := message.Parse(strings.NewReader(exampleMsg))
	if err != nil {
		panic(err)
	}

	text, err := msg.ReadText()
	if err != nil {
		panic(err)
	}

	fmt.Println(msg.Subject())
	fmt.Println(msg.AddressFrom())
	fmt.Println(text)
	fmt.Println(msg.Body())
	// Output:
	// ステーキ
	// sender@example.test
	// ミディアムレアでお願いします
	// Multipart: {"multipart/alternative":[["text/plain"],["text/html"]]}
}

func ExampleNewPart() {
	p := message.NewPart([]byte("5ZWP5aKe"), "text/plain", "base64")
	fmt.Println(p)
	fmt.Println(message.Structure(p))
	// Output:
	// 問增
	// [text/plain]
}

func ExampleFindAll() {
	msg := message.ParseBytes([]byte(exampleMsg))
	for _, p := range message.FindAll(msg.Body(), "text/html") {
		fmt.Println(message.HTMLToText(p.String()))
	}
	// Output:
	// Medium rare, please.
}
