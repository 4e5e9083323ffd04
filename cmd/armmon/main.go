package main

import (
	"flag"
	"log"
	"os"
	"reflect"
	"strings"

	"github.com/robotalks/arm.go/pkg/l1/comm/mqtt"
	"github.com/robotalks/arm.go/pkg/l1/msgs"

	_ "github.com/robotalks/arm.go/pkg/teleop/msgs"
)

var (
	mqttURL = "mqtt://localhost:1883/arm/"
)

func init() {
	if val := os.Getenv("ARM_MQTT_URL"); val != "" {
		mqttURL = val
	}
	flag.StringVar(&mqttURL, "mqtt", mqttURL, "MQTT broker URL.")
	flag.Usage = func() {
		log.Printf("Usage: %s [OPTIONS] [TYPE ID]", os.Args[0])
		flag.PrintDefaults()
	}
}

// topicFilter narrows the subscription to one controller when
// TYPE and ID are given on the command line.
func topicFilter(args []string) string {
	if len(args) >= 2 {
		return args[0] + "/" + args[1] + "/#"
	}
	return "#"
}

func main() {
	flag.Parse()
	log.SetFlags(log.Lmicroseconds)

	q, err := mqtt.NewQueueFromURL(mqttURL)
	if err != nil {
		log.Fatalln(err)
	}

	q.Sub(topicFilter(flag.Args()), mqtt.Handler(func(topic string, payload []byte) {
		if strings.HasSuffix(topic, "/meta") {
			if len(payload) == 0 {
				log.Printf("%s: controller gone", topic)
				return
			}
			log.Printf("%s: %s", topic, string(payload))
			return
		}
		typed, err := msgs.DecodeTyped(payload)
		if err != nil {
			log.Printf("%s: bad message: %v", topic, err)
			return
		}
		msg, err := typed.Decode()
		if err != nil {
			log.Printf("%s: decode error: (type_id=%x) %v", topic, typed.TypeId, err)
			return
		}
		log.Printf("%s: [%s] %s", topic,
			reflect.Indirect(reflect.ValueOf(msg)).Type().Name(),
			msg.(msgs.SerializableMessage).Serializable().String())
	}))
	if token := q.Connect(); token.Wait() && token.Error() != nil {
		log.Fatalln(token.Error())
	}
	<-(chan struct{})(nil)
}
