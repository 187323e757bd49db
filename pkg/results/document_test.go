package results

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

const sampleDocument = `<?xml version="1.0" encoding="UTF-8"?>
<MQSim_Results>
  <Host>
    <Host.IO_Flow Name="flow.0">
      <Request_Count>1000</Request_Count>
      <IOPS>52341.5</IOPS>
    </Host.IO_Flow>
  </Host>
  <SSDDevice>
    <SSDDevice.TSU ID="tsu.0">
      <Queue Name="User_Read_TR_Queue" No_Of_Transactions_Enqueued="10"/>
      <Queue Name="User_Write_TR_Queue" No_Of_Transactions_Enqueued="30"/>
      <Queue Name="GC_TR_Queue" No_Of_Transactions_Enqueued="5"/>
    </SSDDevice.TSU>
  </SSDDevice>
</MQSim_Results>`

func TestDocument(t *testing.T) {
	Convey("Given a parsed result document", t, func() {
		doc, err := Parse([]byte(sampleDocument))
		So(err, ShouldBeNil)

		Convey("Paths resolve to nested elements", func() {
			host := doc.FindPath("Host/Host.IO_Flow")
			So(host, ShouldNotBeNil)

			name, ok := host.Attr("Name")
			So(ok, ShouldBeTrue)
			So(name, ShouldEqual, "flow.0")

			count, ok := host.IntChild("Request_Count")
			So(ok, ShouldBeTrue)
			So(count, ShouldEqual, 1000)

			iops, ok := host.FloatChild("IOPS")
			So(ok, ShouldBeTrue)
			So(iops, ShouldAlmostEqual, 52341.5)
		})

		Convey("Missing subtrees resolve to nil without failing", func() {
			So(doc.FindPath("SSDDevice/SSDDevice.FTL"), ShouldBeNil)
			So(doc.FindAllPath("SSDDevice/SSDDevice.FlashChips"), ShouldBeEmpty)
		})

		Convey("FindAllPath collects every matching leaf", func() {
			queues := doc.FindAllPath("SSDDevice/SSDDevice.TSU")
			So(queues, ShouldHaveLength, 1)
			So(queues[0].Children, ShouldHaveLength, 3)
		})

		Convey("Missing attributes and children report absence", func() {
			host := doc.FindPath("Host/Host.IO_Flow")
			_, ok := host.Attr("Priority_Class")
			So(ok, ShouldBeFalse)
			_, ok = host.IntChild("Write_Request_Count")
			So(ok, ShouldBeFalse)
		})
	})

	Convey("Malformed documents surface a parse error", t, func() {
		doc, err := Parse([]byte("<MQSim_Results><unclosed>"))
		So(doc, ShouldBeNil)
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "decoding result document failed")
	})

	Convey("Empty input surfaces a parse error", t, func() {
		_, err := Parse([]byte{})
		So(err, ShouldNotBeNil)
	})
}

func TestSafeParsing(t *testing.T) {
	Convey("While parsing counter text leniently", t, func() {
		Convey("Integers parse directly and through float notation", func() {
			value, ok := SafeInt(" 42 ")
			So(ok, ShouldBeTrue)
			So(value, ShouldEqual, 42)

			value, ok = SafeInt("42.7")
			So(ok, ShouldBeTrue)
			So(value, ShouldEqual, 42)
		})

		Convey("Empty and malformed text report absence", func() {
			_, ok := SafeInt("")
			So(ok, ShouldBeFalse)
			_, ok = SafeInt("n/a")
			So(ok, ShouldBeFalse)
			_, ok = SafeFloat("   ")
			So(ok, ShouldBeFalse)
			_, ok = SafeFloat("fast")
			So(ok, ShouldBeFalse)
		})

		Convey("Floats parse with surrounding whitespace", func() {
			value, ok := SafeFloat(" 0.25 ")
			So(ok, ShouldBeTrue)
			So(value, ShouldAlmostEqual, 0.25)
		})
	})
}
