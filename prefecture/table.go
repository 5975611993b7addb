package prefecture

import "fmt"

// nameRecord is one row of the static table. Romaji is stored lowercase;
// short forms are derived, never stored, so the suffix rules stay the single
// source of truth.
type nameRecord struct {
	kanji    string
	hiragana string
	katakana string
	english  string
}

// table holds the 47 rows indexed by code-1. The data follows the JIS X 0401
// enumeration and must never change.
var table = [Count]nameRecord{
	{"北海道", "ほっかいどう", "ホッカイドウ", "hokkaido"},
	{"青森県", "あおもりけん", "アオモリケン", "aomori"},
	{"岩手県", "いわてけん", "イワテケン", "iwate"},
	{"宮城県", "みやぎけん", "ミヤギケン", "miyagi"},
	{"秋田県", "あきたけん", "アキタケン", "akita"},
	{"山形県", "やまがたけん", "ヤマガタケン", "yamagata"},
	{"福島県", "ふくしまけん", "フクシマケン", "fukushima"},
	{"茨城県", "いばらきけん", "イバラキケン", "ibaraki"},
	{"栃木県", "とちぎけん", "トチギケン", "tochigi"},
	{"群馬県", "ぐんまけん", "グンマケン", "gunma"},
	{"埼玉県", "さいたまけん", "サイタマケン", "saitama"},
	{"千葉県", "ちばけん", "チバケン", "chiba"},
	{"東京都", "とうきょうと", "トウキョウト", "tokyo"},
	{"神奈川県", "かながわけん", "カナガワケン", "kanagawa"},
	{"新潟県", "にいがたけん", "ニイガタケン", "niigata"},
	{"富山県", "とやまけん", "トヤマケン", "toyama"},
	{"石川県", "いしかわけん", "イシカワケン", "ishikawa"},
	{"福井県", "ふくいけん", "フクイケン", "fukui"},
	{"山梨県", "やまなしけん", "ヤマナシケン", "yamanashi"},
	{"長野県", "ながのけん", "ナガノケン", "nagano"},
	{"岐阜県", "ぎふけん", "ギフケン", "gifu"},
	{"静岡県", "しずおかけん", "シズオカケン", "shizuoka"},
	{"愛知県", "あいちけん", "アイチケン", "aichi"},
	{"三重県", "みえけん", "ミエケン", "mie"},
	{"滋賀県", "しがけん", "シガケン", "shiga"},
	{"京都府", "きょうとふ", "キョウトフ", "kyoto"},
	{"大阪府", "おおさかふ", "オオサカフ", "osaka"},
	{"兵庫県", "ひょうごけん", "ヒョウゴケン", "hyogo"},
	{"奈良県", "ならけん", "ナラケン", "nara"},
	{"和歌山県", "わかやまけん", "ワカヤマケン", "wakayama"},
	{"鳥取県", "とっとりけん", "トットリケン", "tottori"},
	{"島根県", "しまねけん", "シマネケン", "shimane"},
	{"岡山県", "おかやまけん", "オカヤマケン", "okayama"},
	{"広島県", "ひろしまけん", "ヒロシマケン", "hiroshima"},
	{"山口県", "やまぐちけん", "ヤマグチケン", "yamaguchi"},
	{"徳島県", "とくしまけん", "トクシマケン", "tokushima"},
	{"香川県", "かがわけん", "カガワケン", "kagawa"},
	{"愛媛県", "えひめけん", "エヒメケン", "ehime"},
	{"高知県", "こうちけん", "コウチケン", "kochi"},
	{"福岡県", "ふくおかけん", "フクオカケン", "fukuoka"},
	{"佐賀県", "さがけん", "サガケン", "saga"},
	{"長崎県", "ながさきけん", "ナガサキケン", "nagasaki"},
	{"熊本県", "くまもとけん", "クマモトケン", "kumamoto"},
	{"大分県", "おおいたけん", "オオイタケン", "oita"},
	{"宮崎県", "みやざきけん", "ミヤザキケン", "miyazaki"},
	{"鹿児島県", "かごしまけん", "カゴシマケン", "kagoshima"},
	{"沖縄県", "おきなわけん", "オキナワケン", "okinawa"},
}

// record returns the table row for p. A request for an undefined value is a
// programming error, not a lookup miss, and panics.
func (p Prefecture) record() nameRecord {
	if !p.Valid() {
		panic(fmt.Sprintf("prefecture: no table entry for value %d", int(p)))
	}
	return table[int(p)-1]
}
